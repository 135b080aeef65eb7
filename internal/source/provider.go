package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// LoadStatus classifies the outcome of a Provider.TryLoad call.
type LoadStatus uint8

const (
	// LoadNotExists means the provider does not know the requested unit;
	// resolution moves on to the next provider.
	LoadNotExists LoadStatus = iota
	// LoadOK means the provider produced source text.
	LoadOK
	// LoadFailed means the provider recognized the unit but could not
	// load it; resolution stops and Err carries the reason.
	LoadFailed
)

// LoadResult is the outcome of resolving a `using` import to source text.
type LoadResult struct {
	Status  LoadStatus
	Path    string // resolved path, set when Status == LoadOK
	Content []byte // source text, set when Status == LoadOK
	Err     error  // set when Status == LoadFailed
}

// Provider resolves an import request to source text. `requested` is the
// spelling from the using-declaration; `current` is the path of the file
// the request appears in ("" for the root unit).
type Provider interface {
	TryLoad(requested, current string) LoadResult
}

// AsyncProvider is the cancellable flavor of Provider. Cancellation
// cancels only the load, never a parse in progress.
type AsyncProvider interface {
	TryLoad(ctx context.Context, requested, current string) <-chan LoadResult
}

// ResolveLoad tries each provider in order. The first provider that does
// not answer NotExists decides the outcome. With no providers, or when
// all answer NotExists, the result is NotExists.
func ResolveLoad(providers []Provider, requested, current string) LoadResult {
	for _, p := range providers {
		res := p.TryLoad(requested, current)
		if res.Status != LoadNotExists {
			return res
		}
	}
	return LoadResult{Status: LoadNotExists}
}

// DiskProvider loads units from the file system. A request is resolved
// relative to the directory of the current file first, then relative to
// Root. The ".em" extension is appended when missing, and dotted module
// paths map to path separators ("a.b" -> "a/b.em").
type DiskProvider struct {
	Root string
}

func (p DiskProvider) TryLoad(requested, current string) LoadResult {
	rel := requested
	if filepath.Ext(rel) != ".em" {
		rel = filepath.FromSlash(dotsToSlashes(rel)) + ".em"
	}

	var candidates []string
	if current != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(current), rel))
	}
	if p.Root != "" {
		candidates = append(candidates, filepath.Join(p.Root, rel))
	} else if current == "" {
		candidates = append(candidates, rel)
	}

	for _, path := range candidates {
		content, err := os.ReadFile(path) // #nosec G304 -- resolution is the provider's job
		if err == nil {
			return LoadResult{Status: LoadOK, Path: path, Content: content}
		}
		if !errors.Is(err, os.ErrNotExist) {
			return LoadResult{Status: LoadFailed, Err: err}
		}
	}
	return LoadResult{Status: LoadNotExists}
}

// AsyncDiskProvider wraps DiskProvider behind the asynchronous contract.
type AsyncDiskProvider struct {
	Disk DiskProvider
}

func (p AsyncDiskProvider) TryLoad(ctx context.Context, requested, current string) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- LoadResult{Status: LoadFailed, Err: ctx.Err()}
		default:
			out <- p.Disk.TryLoad(requested, current)
		}
	}()
	return out
}

func dotsToSlashes(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = '/'
		}
	}
	return string(b)
}
