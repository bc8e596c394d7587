package helix

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// SearchMatch is one occurrence of a search pattern in a sequence
type SearchMatch struct {
	// Start of the match (0-indexed, inclusive)
	Start int `json:"start"`

	// End of the match (0-indexed, exclusive). For circular sequences a
	// match across the origin wraps: End may be less than Start
	End int `json:"end"`

	// Seq that matched
	Seq string `json:"seq"`

	// Complement is true when the reverse complement of the pattern matched
	Complement bool `json:"complement"`
}

// findPattern finds exact, case-insensitive occurrences of a pattern in a
// sequence, on both strands. Circular sequences are extended across the
// origin so wrapping matches are found. Results are sorted by start
func findPattern(seq, pattern string, circular bool) []SearchMatch {
	upperSeq := strings.ToUpper(seq)
	upperPat := strings.ToUpper(pattern)
	seqLen := len(upperSeq)

	if upperPat == "" || seqLen == 0 {
		return nil
	}

	searchSeq := upperSeq
	if circular {
		// extend by one pattern-length less one so origin-crossing
		// matches show up exactly once
		extend := len(upperPat)
		if extend > seqLen {
			extend = seqLen
		}
		if extend > 0 {
			extend--
		}
		searchSeq = upperSeq + upperSeq[:extend]
	}

	matches := findInStrand(searchSeq, upperPat, seqLen, false)

	// the reverse complement strand, skipped for palindromes to avoid
	// reporting the same span twice
	rcPat := reverseComplement(upperPat)
	if rcPat != upperPat {
		matches = append(matches, findInStrand(searchSeq, rcPat, seqLen, true)...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}

// findInStrand collects the occurrences of one pattern, overlapping included
func findInStrand(searchSeq, pattern string, seqLen int, complement bool) []SearchMatch {
	var matches []SearchMatch

	pos := 0
	for {
		idx := strings.Index(searchSeq[pos:], pattern)
		if idx < 0 {
			break
		}

		abs := pos + idx
		if abs < seqLen {
			end := abs + len(pattern)
			if end > seqLen {
				// the match crosses the origin of a circular sequence
				end -= seqLen
			}
			matches = append(matches, SearchMatch{
				Start:      abs,
				End:        end,
				Seq:        pattern,
				Complement: complement,
			})
		}
		pos = abs + 1
	}

	return matches
}

// findRegex finds case-insensitive regex matches in a sequence. Circular
// sequences are extended across the origin like findPattern, using the
// pattern's literal length as the extension estimate
func findRegex(seq, pattern string, circular bool) ([]SearchMatch, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}

	upperSeq := strings.ToUpper(seq)
	seqLen := len(upperSeq)

	searchSeq := upperSeq
	if circular && seqLen > 0 {
		extend := len(pattern)
		if extend > seqLen {
			extend = seqLen
		}
		if extend > 0 {
			extend--
		}
		searchSeq = upperSeq + upperSeq[:extend]
	}

	var matches []SearchMatch
	for _, loc := range re.FindAllStringIndex(searchSeq, -1) {
		if loc[0] < seqLen {
			end := loc[1]
			if end > seqLen {
				end -= seqLen
			}
			matches = append(matches, SearchMatch{
				Start:      loc[0],
				End:        end,
				Seq:        searchSeq[loc[0]:loc[1]],
				Complement: false,
			})
		}
	}

	return matches, nil
}

// PatternFindCmd is the cobra handler for `helix find pattern`: it logs
// each occurrence of a pattern in the target sequence
func PatternFindCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno pattern passed.")
	}
	pattern := args[0]

	_, seq, circular := readTarget(cmd, args[1:])
	if circularFlag, err := cmd.Flags().GetBool("circular"); err == nil && circularFlag {
		circular = true
	}

	var matches []SearchMatch
	if isRegex, _ := cmd.Flags().GetBool("regex"); isRegex {
		var err error
		if matches, err = findRegex(seq, pattern, circular); err != nil {
			stderr.Fatalf("failed to compile pattern %s: %v", pattern, err)
		}
	} else {
		matches = findPattern(seq, pattern, circular)
	}

	if len(matches) < 1 {
		fmt.Printf("failed to find %s in the sequence\n", pattern)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "start\tend\tstrand\tseq\n")
	for _, m := range matches {
		strand := "+"
		if m.Complement {
			strand = "-"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", m.Start, m.End, strand, m.Seq)
	}
	w.Flush()
}
