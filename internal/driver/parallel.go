package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/source"
)

// DirResult is the outcome for one file of a directory parse, in
// deterministic (sorted path) order.
type DirResult struct {
	Path   string
	Parse  *ParseResult // nil on a cache hit
	Bag    *diag.Bag
	Cached bool
}

// ProgressFunc is invoked after each file completes. It may be called
// from multiple goroutines.
type ProgressFunc func(path string, hasErrors bool, cached bool)

// ParseDir parses every .em file under dir concurrently, bounded by the
// CPU count. When Options.CacheDir is set, files whose content hash has
// a cache entry skip re-parsing and report their cached diagnostics.
func ParseDir(ctx context.Context, dir string, opts Options, progress ProgressFunc) ([]DirResult, error) {
	paths, err := ListSources(dir)
	if err != nil {
		return nil, err
	}

	var cache *Cache
	if opts.CacheDir != "" {
		cache, err = OpenCache(opts.CacheDir)
		if err != nil {
			return nil, err
		}
	}

	results := make([]DirResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := parseOne(path, opts, cache)
			if err != nil {
				return err
			}
			results[i] = res
			if progress != nil {
				progress(path, res.Bag.HasErrors(), res.Cached)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseOne(path string, opts Options, cache *Cache) (DirResult, error) {
	if cache != nil {
		if res, ok := tryCached(path, cache); ok {
			return res, nil
		}
	}

	parsed, err := Parse(path, opts)
	if err != nil {
		return DirResult{}, err
	}
	if cache != nil {
		entry := &CacheEntry{
			TokenCount: len(parsed.Result.Tokens),
			Diags:      cacheDiags(parsed.Bag),
		}
		// a failed store only costs the next run a re-parse
		_ = cache.Store(parsed.File.Hash, entry)
	}
	return DirResult{Path: path, Parse: parsed, Bag: parsed.Bag}, nil
}

func tryCached(path string, cache *Cache) (DirResult, bool) {
	scratch := source.NewFileSet()
	id, err := scratch.Load(path)
	if err != nil {
		return DirResult{}, false
	}
	file := scratch.Get(id)
	entry, ok := cache.Load(file.Hash)
	if !ok {
		return DirResult{}, false
	}
	bag := diag.NewBag()
	restoreDiags(entry.Diags, file.ID, bag)
	return DirResult{Path: path, Bag: bag, Cached: true}, true
}

// ListSources returns every .em file under dir, sorted.
func ListSources(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".em" {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
