package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.em",
	Short: "Tokenize an ember source file",
	Long:  `Tokenize breaks an ember source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	defines, _ := cmd.Root().PersistentFlags().GetStringSlice("defines")

	result, err := driver.Tokenize(filePath, driver.Options{
		Defines: resolveDefines(defines, filepath.Dir(filePath)),
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowSnippet: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
