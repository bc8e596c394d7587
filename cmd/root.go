// Package cmd is for command line interactions with the helix application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "helix",
	Short: `Align, annotate and search DNA sequences.
Find known parts (promoters, terminators, tags, origins) in a target sequence`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log results to stdout")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
