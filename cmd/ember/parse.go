package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.em",
	Short: "Parse an ember source file and dump the syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|tokens)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	defines, _ := cmd.Root().PersistentFlags().GetStringSlice("defines")

	result, err := driver.Parse(filePath, driver.Options{
		Defines: resolveDefines(defines, filepath.Dir(filePath)),
	})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowSnippet: true,
		})
	}

	switch format {
	case "tree":
		dumpTree(result)
	case "tokens":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("parse finished with errors")
	}
	return nil
}

func dumpTree(result *driver.ParseResult) {
	r := result.Result
	for _, u := range r.Usings {
		fmt.Println(u)
	}
	for _, a := range r.Aliases {
		fmt.Println(a)
	}
	for _, s := range r.Structs {
		fmt.Println(s)
	}
	for _, f := range r.Functions {
		fmt.Println(f)
	}
	for _, o := range r.Operators {
		fmt.Println(o)
	}
	for _, s := range r.TopLevel {
		if str, ok := s.(fmt.Stringer); ok {
			fmt.Println(str)
		} else {
			fmt.Printf("<%T>\n", s)
		}
	}
}
