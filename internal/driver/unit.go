package driver

import (
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
)

// UnitFile is one parsed file of a compilation unit.
type UnitFile struct {
	Path   string
	FileID source.FileID
	Result *parser.Result
	Bag    *diag.Bag
}

// Unit is a root file plus every file reachable from it through
// using-imports, in discovery order (root first, depth-first).
type Unit struct {
	FileSet *source.FileSet
	Files   []*UnitFile
}

// HasErrors reports whether any file of the unit has errors.
func (u *Unit) HasErrors() bool {
	for _, f := range u.Files {
		if f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// CompileUnit parses the root file and follows its using-imports
// through the registered providers, depth-first and cycle-safe. I/O
// happens strictly between parses, never during one.
func CompileUnit(rootPath string, opts Options) (*Unit, error) {
	fs := source.NewFileSet()
	rootID, err := fs.Load(rootPath)
	if err != nil {
		return nil, err
	}

	unit := &Unit{FileSet: fs}
	visited := map[string]bool{fs.Get(rootID).Path: true}
	unit.compileFile(fs.Get(rootID), opts, visited)
	return unit, nil
}

func (u *Unit) compileFile(file *source.File, opts Options, visited map[string]bool) {
	bag := diag.NewBag()
	tokens := lexer.Tokenize(file, bag, opts.Defines)
	result := parser.Parse(tokens, file.ID, bag)
	u.Files = append(u.Files, &UnitFile{
		Path:   file.Path,
		FileID: file.ID,
		Result: result,
		Bag:    bag,
	})

	for _, using := range result.Usings {
		requested := using.PathString()
		if requested == "" {
			continue
		}
		res := source.ResolveLoad(opts.Providers, requested, file.Path)
		switch res.Status {
		case source.LoadNotExists:
			bag.AddError(diag.UnknownCode, using.Pos(), file.ID,
				"cannot resolve import '"+requested+"'")
		case source.LoadFailed:
			bag.AddError(diag.UnknownCode, using.Pos(), file.ID,
				"failed to load import '"+requested+"': "+res.Err.Error())
		case source.LoadOK:
			if visited[res.Path] {
				continue
			}
			visited[res.Path] = true
			id := u.FileSet.Add(res.Path, res.Content, 0)
			u.compileFile(u.FileSet.Get(id), opts, visited)
		}
	}
}
