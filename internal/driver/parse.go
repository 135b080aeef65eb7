// Package driver orchestrates the front-end for the CLI: loading files,
// tokenizing, parsing, following using-imports, and the parallel
// directory walk with its disk cache.
package driver

import (
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/token"
)

// Options configures a driver run.
type Options struct {
	// Defines seeds the preprocessor variable set.
	Defines []string
	// Providers resolve using-imports; empty means imports are not
	// followed.
	Providers []source.Provider
	// CacheDir enables ParseDir's parse cache when non-empty; the
	// single-file entries do not use it.
	CacheDir string
}

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes a single file.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag()
	tokens := lexer.Tokenize(file, bag, opts.Defines)
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  *parser.Result
	Bag     *diag.Bag
}

// Parse loads, tokenizes and parses a single file.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, opts), nil
}

// ParseVirtual parses in-memory source under the given name.
func ParseVirtual(name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, opts)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, opts Options) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag()
	tokens := lexer.Tokenize(file, bag, opts.Defines)
	result := parser.Parse(tokens, fileID, bag)
	return &ParseResult{FileSet: fs, File: file, Result: result, Bag: bag}
}
