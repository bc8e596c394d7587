package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// setCmd is for adding entries to the components database
var setCmd = &cobra.Command{
	Use:                        "set [component]",
	Short:                      "Add a component",
	SuggestionsMinimumDistance: 1,
	Long: `
Add a component with its name and sequence to the components database so it
can be found during 'helix annotate'.`,
	Aliases: []string{"add"},
}

// componentSetCmd is for adding a new component to the components db
var componentSetCmd = &cobra.Command{
	Use:                        "component [name] [sequence]",
	Short:                      "Add a component to the components database",
	Run:                        helix.ComponentSetCmd,
	SuggestionsMinimumDistance: 2,
	Long:                       "\nAdd a component to the components database so it is used in 'helix annotate'",
	Aliases:                    []string{"add"},
	Example:                    "  helix set component \"custom terminator 3\" CTAGCATAACAAGCTTGGGCACCTGTAAACGGGTCTTGAGGGGTTCCATTTTG -t terminator",
}

// set flags
func init() {
	componentSetCmd.Flags().StringP("category", "t", "misc", "the component's category, eg promoter, terminator, tag")
	componentSetCmd.Flags().StringP("color", "c", "", "hex color for the component on a plasmid map")
	componentSetCmd.Flags().StringP("description", "d", "", "free text description")
	componentSetCmd.Flags().StringP("organism", "g", "", "source organism")

	setCmd.AddCommand(componentSetCmd)

	rootCmd.AddCommand(setCmd)
}
