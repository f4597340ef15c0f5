package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "conjuror",
	Short: "Tool for conjuring and playing with magic cards",
	Long: `Conjuror is a command-line toy for conjuring magic cards with randomized
titles, flavor text and face colors. Cards can be flipped face down, shuffled
around an in-memory table, and rendered as colored card faces in the terminal.`,
}

func init() {
	RootCmd.AddCommand(drawCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
