package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// annotateCmd is for finding known components in a target sequence.
var annotateCmd = &cobra.Command{
	Use:                        "annotate [seq]",
	Run:                        helix.AnnotateCmd,
	Short:                      "Annotate a sequence using the components database",
	SuggestionsMinimumDistance: 3,
	Long: `Align every DNA component in the components database against the target
sequence (both strands) and report the hits that pass the identity and
coverage thresholds. Overlapping hits are culled, keeping the best score
per region.`,
	Example: "  helix annotate -i plasmid.gb -o annotated.gb",
}

// set flags
func init() {
	annotateCmd.Flags().StringP("in", "i", "", "input file name (FASTA or GenBank)")
	annotateCmd.Flags().StringP("out", "o", "", "output file name (.gb or .json)")
	annotateCmd.Flags().StringP("category", "t", "", "only use components of this category")
	annotateCmd.Flags().Float64P("identity", "p", 0, "match %-identity threshold (default from settings)")
	annotateCmd.Flags().Float64P("coverage", "c", 0, "query %-coverage threshold (default from settings)")
	annotateCmd.Flags().BoolP("circular", "r", false, "treat the target sequence as circular")
	annotateCmd.Flags().BoolP("names", "n", false, "log component names to the console")

	rootCmd.AddCommand(annotateCmd)
}
