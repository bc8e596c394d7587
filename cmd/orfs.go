package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// orfsCmd is for scanning a sequence for open reading frames.
var orfsCmd = &cobra.Command{
	Use:                        "orfs [seq]",
	Run:                        helix.OrfsCmd,
	Short:                      "Find open reading frames in a sequence",
	SuggestionsMinimumDistance: 2,
	Long: `Scan all six frames of the target sequence for open reading frames:
a start codon followed by an in-frame stop codon. Reverse-strand ORFs are
reported in forward-strand coordinates.`,
	Example: "  helix orfs -i plasmid.fa --min-length 100",
	Aliases: []string{"orf"},
}

// set flags
func init() {
	orfsCmd.Flags().StringP("in", "i", "", "input file name (FASTA or GenBank)")
	orfsCmd.Flags().IntP("min-length", "m", 30, "minimum ORF length in amino acids")

	rootCmd.AddCommand(orfsCmd)
}
