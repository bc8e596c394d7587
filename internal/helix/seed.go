package helix

// categoryColors are the default map colors per component category
var categoryColors = map[string]string{
	"promoter":   "#2dd4a8",
	"cds":        "#5b9cf5",
	"terminator": "#ef6b6b",
	"ori":        "#f0b429",
	"resistance": "#a78bfa",
	"tag":        "#f472b6",
	"rbs":        "#67e8f9",
	"primer":     "#9a9ba3",
	"operator":   "#9a9ba3",
}

// builtinComponents are the parts that ship with helix: common promoters,
// terminators, tags, primer binding sites and operators. Protein entries
// are present for display but are skipped during annotation
func builtinComponents() []Component {
	parts := []struct {
		name     string
		category string
		seq      string
		organism string
	}{
		{"T7 promoter", "promoter", "TAATACGACTCACTATAGGG", "T7 bacteriophage"},
		{"T3 promoter", "promoter", "AATTAACCCTCACTAAAGGG", "T3 bacteriophage"},
		{"SP6 promoter", "promoter", "ATTTAGGTGACACTATAGAA", "SP6 bacteriophage"},
		{"lac promoter", "promoter", "TTTACACTTTATGCTTCCGGCTCGTATGTTG", "E. coli"},
		{"lac operator", "operator", "GGAATTGTGAGCGGATAACAATT", "E. coli"},
		{"T7 terminator", "terminator", "CTAGCATAACCCCTTGGGGCCTCTAAACGGGTCTTGAGGGGTTTTTTG", "T7 bacteriophage"},
		{"B0034 RBS", "rbs", "AAAGAGGAGAAA", "synthetic"},
		{"6xHis tag", "tag", "CACCACCACCACCACCAC", "synthetic"},
		{"FLAG tag", "tag", "GATTACAAGGATGACGACGATAAG", "synthetic"},
		{"HA tag", "tag", "TACCCATACGATGTTCCAGATTACGCT", "influenza"},
		{"Myc tag", "tag", "GAACAAAAACTCATCTCAGAAGAGGATCTG", "human"},
		{"Strep-tag II", "tag", "TGGAGCCACCCGCAGTTCGAAAAA", "synthetic"},
		{"M13 fwd primer site", "primer", "GTAAAACGACGGCCAGT", "M13 bacteriophage"},
		{"M13 rev primer site", "primer", "CAGGAAACAGCTATGAC", "M13 bacteriophage"},
		{"Kozak sequence", "rbs", "GCCACCATGG", "vertebrate"},
		// protein entry, never aligned
		{"EGFP N-terminal peptide", "cds", "MVSKGEELFTGVVPILVELDGDVNGHKF", "A. victoria"},
	}

	comps := make([]Component, 0, len(parts))
	for _, p := range parts {
		comps = append(comps, Component{
			Name:        p.name,
			Category:    p.category,
			Seq:         p.seq,
			Length:      len(p.seq),
			Description: "helix built-in component",
			Organism:    p.organism,
			Builtin:     true,
			Color:       categoryColors[p.category],
		})
	}
	return comps
}
