package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember language front-end toolchain",
	Long:  `Ember is a programming language front-end with diagnostic tools`,
}

// main registers the subcommands and persistent flags, then executes
// the root command; a command error exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file in check's JSON output")
	rootCmd.PersistentFlags().StringSlice("defines", nil, "initial preprocessor variables")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
