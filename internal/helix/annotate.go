package helix

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/McClain-Thiel/helix/config"
	"github.com/spf13/cobra"
)

// AnnotationConfig are each annotation run's settings. Callers build one
// per run and the run never mutates it
type AnnotationConfig struct {
	// MinIdentity is the minimum percent identity to report a hit (0-100)
	MinIdentity float64

	// MinCoverage is the minimum query coverage to report a hit (0-100)
	MinCoverage float64

	// Scoring parameters for the Smith-Waterman alignments
	Scoring ScoringParams

	// BandWidth for banded alignment (zero or below means a full matrix)
	BandWidth int

	// MinScore is the minimum alignment score to consider a hit at all
	MinScore int
}

// AnnotationHit is a single known component found in the target sequence
type AnnotationHit struct {
	// Name of the matched component
	Name string `json:"name"`

	// ComponentID of the component in the components database
	ComponentID int64 `json:"componentId"`

	// Category of the component: promoter, terminator, ori, cds, etc
	Category string `json:"category"`

	// TargetStart on the target (0-indexed, inclusive)
	TargetStart int `json:"targetStart"`

	// TargetEnd on the target (0-indexed, exclusive)
	TargetEnd int `json:"targetEnd"`

	// ReverseComplement is true if the hit is on the reverse complement strand
	ReverseComplement bool `json:"reverseComplement"`

	// PercentIdentity of the alignment
	PercentIdentity float64 `json:"percentIdentity"`

	// QueryCoverage of the alignment
	QueryCoverage float64 `json:"queryCoverage"`

	// Score is the raw alignment score
	Score int `json:"score"`

	// Color of the component on a plasmid map
	Color string `json:"color,omitempty"`
}

// length of the hit on the target
func (h *AnnotationHit) length() int {
	return h.TargetEnd - h.TargetStart
}

// Annotate finds components from the database in a target sequence.
//
// Each DNA component is aligned against both strands of the target.
// Hits passing the identity and coverage thresholds are kept, reverse
// complement hits are mapped back to forward-target coordinates, and
// overlapping hits are culled, keeping the best score per region.
// Components whose sequences hold protein or ambiguity characters are
// skipped, not scored.
//
// The circular flag is accepted for parity with the rest of the toolkit
// but annotation does not yet align across a circular target's origin.
//
// A target with no recognizable components returns an empty list.
func Annotate(target string, circular bool, components []Component, conf AnnotationConfig) []AnnotationHit {
	targetBytes := []byte(target)
	var hits []AnnotationHit

	for _, c := range components {
		if !isDNA(c.Seq) {
			continue
		}

		query := []byte(c.Seq)
		result, isRC := AlignBothStrands(query, targetBytes, conf.Scoring, conf.BandWidth, conf.MinScore)
		if result == nil {
			continue
		}

		identity := result.PercentIdentity()
		coverage := result.QueryCoverage(len(query))
		if identity < conf.MinIdentity || coverage < conf.MinCoverage {
			continue
		}

		start, end := result.TargetStart, result.TargetEnd
		if isRC {
			// map coordinates out of the reverse complement's frame
			start = len(targetBytes) - result.TargetEnd
			end = len(targetBytes) - result.TargetStart
		}

		hits = append(hits, AnnotationHit{
			Name:              c.Name,
			ComponentID:       c.ID,
			Category:          c.Category,
			TargetStart:       start,
			TargetEnd:         end,
			ReverseComplement: isRC,
			PercentIdentity:   identity,
			QueryCoverage:     coverage,
			Score:             result.Score,
			Color:             c.Color,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	return resolveOverlaps(hits)
}

// resolveOverlaps culls hits that overlap an already accepted hit.
//
// Greedy interval scheduling: hits arrive sorted by descending score and
// a candidate is dropped when more than half of it is covered by any
// accepted hit. The fraction is measured against the candidate's own
// length, so a short hit buried in a longer accepted one is dropped even
// though the overlap barely dents the longer hit. Accepted hits are
// returned sorted by their start on the target
func resolveOverlaps(hits []AnnotationHit) []AnnotationHit {
	accepted := []AnnotationHit{}

	for _, hit := range hits {
		dominated := false
		for _, existing := range accepted {
			if overlapFraction(&hit, &existing) > 0.5 {
				dominated = true
				break
			}
		}

		if !dominated {
			accepted = append(accepted, hit)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].TargetStart < accepted[j].TargetStart
	})
	return accepted
}

// overlapFraction is the fraction of hit a covered by hit b.
// Zero-length hits always overlap nothing
func overlapFraction(a, b *AnnotationHit) float64 {
	start := a.TargetStart
	if b.TargetStart > start {
		start = b.TargetStart
	}
	end := a.TargetEnd
	if b.TargetEnd < end {
		end = b.TargetEnd
	}

	if start >= end || a.length() == 0 {
		return 0.0
	}
	return float64(end-start) / float64(a.length())
}

// AnnotateCmd is the cobra handler for `helix annotate`: it reads the
// target sequence, annotates it against the components database and
// writes the hits to stdout or the output file
func AnnotateCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	name, target, circular := readTarget(cmd, args)

	out, _ := cmd.Flags().GetString("out")
	category, _ := cmd.Flags().GetString("category")
	if circularFlag, err := cmd.Flags().GetBool("circular"); err == nil && circularFlag {
		circular = true
	}
	namesOnly, _ := cmd.Flags().GetBool("names")

	aConf := AnnotationConfig{
		MinIdentity: conf.Annotate.MinIdentity,
		MinCoverage: conf.Annotate.MinCoverage,
		Scoring: ScoringParams{
			Match:     conf.Alignment.Match,
			Mismatch:  conf.Alignment.Mismatch,
			GapOpen:   conf.Alignment.GapOpen,
			GapExtend: conf.Alignment.GapExtend,
		},
		BandWidth: conf.Alignment.BandWidth,
		MinScore:  conf.Alignment.MinScore,
	}
	if identity, err := cmd.Flags().GetFloat64("identity"); err == nil && identity > 0 {
		aConf.MinIdentity = identity
	}
	if coverage, err := cmd.Flags().GetFloat64("coverage"); err == nil && coverage > 0 {
		aConf.MinCoverage = coverage
	}

	// thresholds are percentages
	if aConf.MinIdentity > 100 {
		aConf.MinIdentity = 100
	}
	if aConf.MinCoverage > 100 {
		aConf.MinCoverage = 100
	}

	db, err := NewComponentDB(conf.DB)
	if err != nil {
		stderr.Fatalln(err)
	}
	defer db.Close()

	components, err := db.Components(category)
	if err != nil {
		stderr.Fatalln(err)
	}

	hits := Annotate(target, circular, components, aConf)

	if namesOnly {
		for _, h := range hits {
			fmt.Println(h.Name)
		}
		return
	}

	if out != "" {
		if strings.HasSuffix(strings.ToLower(out), ".json") {
			writeHitsJSON(out, name, target, hits)
		} else {
			writeGenbank(out, name, target, circular, hits)
		}
		return
	}

	// log the hits to the console
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "name\tcategory\tstart\tend\tstrand\tidentity\tcoverage\tscore\n")
	for _, h := range hits {
		strand := "+"
		if h.ReverseComplement {
			strand = "-"
		}
		fmt.Fprintf(
			w,
			"%s\t%s\t%d\t%d\t%s\t%.1f\t%.1f\t%d\n",
			h.Name, h.Category, h.TargetStart, h.TargetEnd, strand, h.PercentIdentity, h.QueryCoverage, h.Score,
		)
	}
	w.Flush()
}
