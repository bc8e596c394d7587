package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// deleteCmd is for removing entries from the components database
var deleteCmd = &cobra.Command{
	Use:                        "delete [component]",
	Short:                      "Delete a component",
	SuggestionsMinimumDistance: 2,
	Long:                       `Delete a user component from the components database by its id.`,
	Aliases:                    []string{"rm", "remove"},
}

// componentDeleteCmd is for deleting components from the components db
var componentDeleteCmd = &cobra.Command{
	Use:                        "component [id]",
	Short:                      "Delete a component from the components database",
	Run:                        helix.ComponentDeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  helix delete component 17",
	Long: `Delete a user component from the components database by its id.
Built-in components cannot be deleted. 'helix find component' logs ids.`,
}

// set flags
func init() {
	deleteCmd.AddCommand(componentDeleteCmd)

	rootCmd.AddCommand(deleteCmd)
}
