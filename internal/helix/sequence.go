package helix

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// complements maps each IUPAC nucleotide code to its complement.
// Codes outside the table are left as-is during complementation.
var complements = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
	'R': 'Y',
	'Y': 'R',
	'S': 'S',
	'W': 'W',
	'K': 'M',
	'M': 'K',
	'B': 'V',
	'V': 'B',
	'D': 'H',
	'H': 'D',
	'N': 'N',
}

// complementBase returns the complement of a single base, IUPAC ambiguity codes included
func complementBase(b byte) byte {
	if c, known := complements[upper(b)]; known {
		return c
	}
	return b
}

// reverseComplement returns the reverse complement of a sequence
func reverseComplement(seq string) string {
	seq = strings.ToUpper(seq)

	revComp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		revComp[len(seq)-i-1] = complementBase(seq[i])
	}

	return string(revComp)
}

// upper uppercases an ASCII byte
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// isDNA checks whether a sequence contains only A, C, G and T characters.
// Protein sequences and those with ambiguity codes fail the check
func isDNA(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch upper(seq[i]) {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// gcContent returns the fraction of G and C bases in the sequence (0.0 to 1.0)
func gcContent(seq string) float64 {
	if seq == "" {
		return 0.0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		if b := upper(seq[i]); b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// SeqInfoCmd is the cobra handler for `helix seq`: it logs basic stats
// for the target sequence and, with --translate, its protein translation
func SeqInfoCmd(cmd *cobra.Command, args []string) {
	name, seq, circular := readTarget(cmd, args)

	topology := "linear"
	if circular {
		topology = "circular"
	}

	if name != "" {
		fmt.Printf("name      %s\n", name)
	}
	fmt.Printf("length    %d bp\n", len(seq))
	fmt.Printf("topology  %s\n", topology)
	fmt.Printf("gc        %.1f%%\n", gcContent(seq)*100)
	fmt.Printf("revcomp   %s\n", preview(reverseComplement(seq)))

	if doTranslate, _ := cmd.Flags().GetBool("translate"); doTranslate {
		table := standardTable()
		if bacterial, _ := cmd.Flags().GetBool("bacterial"); bacterial {
			table = bacterialTable()
		}
		fmt.Printf("protein   %s\n", translate(seq, table))
	}
}

// preview truncates long sequences for console output
func preview(seq string) string {
	if len(seq) > 60 {
		return seq[:60] + "..."
	}
	return seq
}
