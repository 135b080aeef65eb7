package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache [flags] <dir>",
	Short: "Pre-parse a directory into the parse cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runCache,
}

func runCache(cmd *cobra.Command, args []string) error {
	dir := args[0]
	defines, _ := cmd.Root().PersistentFlags().GetStringSlice("defines")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	opts := driver.Options{
		Defines:  resolveDefines(defines, dir),
		CacheDir: filepath.Join(dir, ".ember-cache"),
	}
	results, err := driver.ParseDir(context.Background(), dir, opts, nil)
	if err != nil {
		return err
	}

	parsed, cached := 0, 0
	for _, res := range results {
		if res.Cached {
			cached++
		} else {
			parsed++
		}
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "cached %d file(s), %d already fresh\n", parsed, cached)
	}
	return nil
}
