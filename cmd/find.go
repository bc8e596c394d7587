package cmd

import (
	"github.com/McClain-Thiel/helix/internal/helix"
	"github.com/spf13/cobra"
)

// findCmd is for finding components or pattern matches.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find components or pattern matches",
	SuggestionsMinimumDistance: 2,
	Long: `Find components in the components database by name, or find a
pattern's occurrences in a target sequence.`,
	Aliases: []string{"ls", "list"},
}

// componentFindCmd is for reading components (close to the one requested) from the db.
var componentFindCmd = &cobra.Command{
	Use:                        "component [name]",
	Short:                      "Find components in the components database",
	Run:                        helix.ComponentFindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  helix find component terminator",
	Long: `Find components in the components database with names containing [name].
Writes each to stdout with its id, name, category and sequence.
'helix find component' without arguments logs every component.`,
	Aliases: []string{"components"},
}

// patternFindCmd is for finding a pattern's occurrences in a sequence.
var patternFindCmd = &cobra.Command{
	Use:                        "pattern [pattern] [seq]",
	Short:                      "Find a pattern's occurrences in a sequence",
	Run:                        helix.PatternFindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  helix find pattern GGATCC -i plasmid.fa",
	Long: `Find every occurrence of [pattern] in the target sequence, on both
strands. Circular sequences are searched across their origin.
With --regex the pattern is treated as a regular expression (forward
strand only).`,
}

// set flags
func init() {
	componentFindCmd.Flags().StringP("category", "t", "", "only list components of this category")

	patternFindCmd.Flags().StringP("in", "i", "", "input file name (FASTA or GenBank)")
	patternFindCmd.Flags().BoolP("circular", "r", false, "treat the target sequence as circular")
	patternFindCmd.Flags().BoolP("regex", "e", false, "treat the pattern as a regular expression")

	findCmd.AddCommand(componentFindCmd)
	findCmd.AddCommand(patternFindCmd)

	rootCmd.AddCommand(findCmd)
}
