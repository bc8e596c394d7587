package helix

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// codonTable maps codons to amino acids for one genetic code
type codonTable struct {
	name string
	id   int

	codons map[string]byte
	starts map[string]bool
	stops  map[string]bool
}

// standardCodons is NCBI translation table 1
var standardCodons = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// codonSet builds a membership set from codon strings
func codonSet(codons ...string) map[string]bool {
	set := make(map[string]bool, len(codons))
	for _, c := range codons {
		set[c] = true
	}
	return set
}

// standardTable is the standard genetic code (NCBI table 1)
func standardTable() *codonTable {
	return &codonTable{
		name:   "Standard",
		id:     1,
		codons: standardCodons,
		starts: codonSet("ATG", "CTG", "TTG"),
		stops:  codonSet("TAA", "TAG", "TGA"),
	}
}

// bacterialTable is the bacterial/archaeal genetic code (NCBI table 11).
// Amino acids match the standard table, the start codons differ
func bacterialTable() *codonTable {
	return &codonTable{
		name:   "Bacterial/Archaeal",
		id:     11,
		codons: standardCodons,
		starts: codonSet("ATG", "GTG", "TTG", "CTG", "ATT", "ATC", "ATA"),
		stops:  codonSet("TAA", "TAG", "TGA"),
	}
}

// translateCodon maps a single codon to its amino acid, 'X' when unknown
func (t *codonTable) translateCodon(codon string) byte {
	if aa, known := t.codons[strings.ToUpper(codon)]; known {
		return aa
	}
	return 'X'
}

func (t *codonTable) isStart(codon string) bool {
	return t.starts[strings.ToUpper(codon)]
}

func (t *codonTable) isStop(codon string) bool {
	return t.stops[strings.ToUpper(codon)]
}

// translate a DNA sequence to amino acids. A trailing partial codon is dropped
func translate(seq string, table *codonTable) string {
	seq = strings.ToUpper(seq)

	var protein strings.Builder
	protein.Grow(len(seq) / 3)
	for i := 0; i+3 <= len(seq); i += 3 {
		protein.WriteByte(table.translateCodon(seq[i : i+3]))
	}
	return protein.String()
}

// Orf is an open reading frame found in a sequence
type Orf struct {
	// Start of the ORF on the forward strand (0-indexed, inclusive)
	Start int `json:"start"`

	// End of the ORF on the forward strand (0-indexed, exclusive, includes the stop codon)
	End int `json:"end"`

	// Frame is 1, 2, 3 on the forward strand and -1, -2, -3 on the reverse
	Frame int `json:"frame"`

	// Protein is the translated amino acid sequence, stop codon excluded
	Protein string `json:"protein"`
}

// findOrfs scans all six frames of a sequence for open reading frames
// with at least minLengthAA amino acids. Reverse-frame coordinates are
// remapped onto the forward strand. Results are sorted by start
func findOrfs(seq string, minLengthAA int) []Orf {
	table := standardTable()
	upper := strings.ToUpper(seq)

	var orfs []Orf
	for offset := 0; offset < 3; offset++ {
		orfs = append(orfs, findOrfsInFrame(upper, offset, offset+1, minLengthAA, table)...)
	}

	rc := reverseComplement(upper)
	for offset := 0; offset < 3; offset++ {
		for _, orf := range findOrfsInFrame(rc, offset, -(offset + 1), minLengthAA, table) {
			orf.Start, orf.End = len(upper)-orf.End, len(upper)-orf.Start
			orfs = append(orfs, orf)
		}
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		return orfs[i].Start < orfs[j].Start
	})
	return orfs
}

// findOrfsInFrame scans one frame, start codon to stop codon
func findOrfsInFrame(seq string, offset, frame, minLengthAA int, table *codonTable) []Orf {
	var orfs []Orf

	i := offset
	for i+3 <= len(seq) {
		if !table.isStart(seq[i : i+3]) {
			i += 3
			continue
		}

		var protein strings.Builder
		j := i
		foundStop := false
		for j+3 <= len(seq) {
			aa := table.translateCodon(seq[j : j+3])
			j += 3
			if aa == '*' {
				foundStop = true
				break
			}
			protein.WriteByte(aa)
		}

		if foundStop && protein.Len() >= minLengthAA {
			orfs = append(orfs, Orf{
				Start:   i,
				End:     j,
				Frame:   frame,
				Protein: protein.String(),
			})
		}
		i = j
	}

	return orfs
}

// OrfsCmd is the cobra handler for `helix orfs`: it scans all six frames
// of the target sequence and logs the open reading frames found
func OrfsCmd(cmd *cobra.Command, args []string) {
	_, seq, _ := readTarget(cmd, args)

	minLength, err := cmd.Flags().GetInt("min-length")
	if err != nil {
		minLength = 30
	}

	orfs := findOrfs(seq, minLength)
	if len(orfs) < 1 {
		fmt.Printf("failed to find any ORFs of at least %d aa\n", minLength)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "start\tend\tframe\tlength\tprotein\n")
	for _, orf := range orfs {
		protein := orf.Protein
		if len(protein) > 30 {
			protein = protein[:30] + "..."
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", orf.Start, orf.End, orf.Frame, len(orf.Protein), protein)
	}
	w.Flush()
}
