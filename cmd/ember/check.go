package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/ui"
	"ember/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file-or-dir>",
	Short: "Tokenize and parse, reporting diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	checkCmd.Flags().Bool("ui", false, "interactive progress for directories")
	checkCmd.Flags().Bool("cache", false, "use the parse cache (.ember-cache) when checking a directory")
	checkCmd.Flags().Bool("follow-imports", false, "also check files reached through using-imports")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, _ := cmd.Flags().GetString("format")
	useUI, _ := cmd.Flags().GetBool("ui")
	useCache, _ := cmd.Flags().GetBool("cache")
	follow, _ := cmd.Flags().GetBool("follow-imports")
	defines, _ := cmd.Root().PersistentFlags().GetStringSlice("defines")
	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	opts := driver.Options{Defines: resolveDefines(defines, target)}
	if useCache {
		opts.CacheDir = filepath.Join(rootDirOf(target), ".ember-cache")
	}

	if info.IsDir() {
		return checkDir(cmd, target, opts, format, useUI)
	}

	if follow {
		opts.Providers = []source.Provider{source.DiskProvider{Root: filepath.Dir(target)}}
		unit, err := driver.CompileUnit(target, opts)
		if err != nil {
			return err
		}
		hadErrors := false
		for _, f := range unit.Files {
			if emitDiagnostics(cmd, f.Bag, unit.FileSet, format, maxDiags) {
				hadErrors = true
			}
		}
		if hadErrors {
			return fmt.Errorf("check finished with errors")
		}
		return nil
	}

	result, err := driver.Parse(target, opts)
	if err != nil {
		return err
	}
	if emitDiagnostics(cmd, result.Bag, result.FileSet, format, maxDiags) {
		return fmt.Errorf("check finished with errors")
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string, opts driver.Options, format string, useUI bool) error {
	var results []driver.DirResult
	var err error

	if useUI && isTerminal(os.Stdout) {
		files, ferr := driver.ListSources(dir)
		if ferr != nil {
			return ferr
		}
		events := make(chan ui.Event, len(files))
		go func() {
			defer close(events)
			results, err = driver.ParseDir(context.Background(), dir, opts,
				func(path string, hasErrors, cached bool) {
					events <- ui.Event{Path: path, HasErrors: hasErrors, Cached: cached}
				})
		}()
		if uiErr := ui.Run("checking "+dir, files, events); uiErr != nil {
			return uiErr
		}
	} else {
		results, err = driver.ParseDir(context.Background(), dir, opts, nil)
	}
	if err != nil {
		return err
	}

	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	hadErrors := false
	for _, res := range results {
		fs := (*source.FileSet)(nil)
		if res.Parse != nil {
			fs = res.Parse.FileSet
		}
		if emitDiagnostics(cmd, res.Bag, fs, format, maxDiags) {
			hadErrors = true
		}
	}
	if hadErrors {
		return fmt.Errorf("check finished with errors")
	}
	return nil
}

// emitDiagnostics prints one bag and reports whether it held errors.
func emitDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string, maxDiags int) bool {
	if bag.Len() == 0 {
		return false
	}
	switch format {
	case "json":
		_ = diagfmt.WriteJSON(os.Stdout, bag, fs, diagfmt.JSONOpts{Max: maxDiags})
	case "sarif":
		_ = diagfmt.WriteSarif(os.Stdout, bag, fs, diagfmt.SarifRunMeta{
			ToolName:    "ember",
			ToolVersion: version.Version,
		})
	default:
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowSnippet: true,
		})
	}
	return bag.HasErrors()
}

// rootDirOf returns the directory a cache should live under.
func rootDirOf(target string) string {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return target
	}
	return filepath.Dir(target)
}
