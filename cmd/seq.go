package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// seqCmd is for logging basic stats about a sequence
var seqCmd = &cobra.Command{
	Use:                        "seq [seq]",
	Run:                        helix.SeqInfoCmd,
	Short:                      "Log a sequence's length, GC content and reverse complement",
	SuggestionsMinimumDistance: 2,
	Long: `Log basic stats for the target sequence: its length, topology, GC
content and reverse complement. With --translate its protein translation
is logged too.`,
	Example: "  helix seq -i insert.fa --translate",
}

// set flags
func init() {
	seqCmd.Flags().StringP("in", "i", "", "input file name (FASTA or GenBank)")
	seqCmd.Flags().BoolP("translate", "x", false, "translate the sequence to protein")
	seqCmd.Flags().BoolP("bacterial", "b", false, "use the bacterial/archaeal codon table")

	rootCmd.AddCommand(seqCmd)
}
