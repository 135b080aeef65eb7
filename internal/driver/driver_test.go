package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ember/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.em")
	writeFile(t, path, "int x = 1;")

	res, err := Tokenize(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("no tokens")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.em")
	writeFile(t, path, "int add(int a, int b) { return a + b; }")

	res, err := Parse(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Result.Functions) != 1 {
		t.Fatalf("functions = %d", len(res.Result.Functions))
	}
}

func TestParseWithDefines(t *testing.T) {
	src := "#if FEATURE\nint f() {}\n#else\nint g() {}\n#endif\n"
	res := ParseVirtual("test.em", []byte(src), Options{Defines: []string{"FEATURE"}})
	if len(res.Result.Functions) != 1 || res.Result.Functions[0].Name.Content != "f" {
		t.Fatalf("functions = %v", res.Result.Functions)
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.em"), "int b() { return 2; }")
	writeFile(t, filepath.Join(dir, "a.em"), "int a() { return 1; }")
	writeFile(t, filepath.Join(dir, "skip.txt"), "not ember")

	var progressed int
	results, err := ParseDir(context.Background(), dir, Options{},
		func(string, bool, bool) { progressed++ })
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	// deterministic path order
	if filepath.Base(results[0].Path) != "a.em" || filepath.Base(results[1].Path) != "b.em" {
		t.Fatalf("order = %v, %v", results[0].Path, results[1].Path)
	}
	if progressed != 2 {
		t.Fatalf("progress calls = %d", progressed)
	}
}

func TestParseDirCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.em"), "int a() { return 1 }")

	opts := Options{CacheDir: filepath.Join(dir, ".ember-cache")}

	first, err := ParseDir(context.Background(), dir, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run must parse")
	}
	firstDiags := first[0].Bag.Len()
	if firstDiags == 0 {
		t.Fatal("test input should produce a diagnostic")
	}

	second, err := ParseDir(context.Background(), dir, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if second[0].Bag.Len() != firstDiags {
		t.Fatalf("cached diagnostics = %d, want %d", second[0].Bag.Len(), firstDiags)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	hash := [32]byte{1, 2, 3}
	entry := &CacheEntry{
		TokenCount: 7,
		Diags: []CachedDiag{{
			Severity: 5, Code: 3004, Message: "boom", Positioned: true,
			StartByte: 1, EndByte: 2, StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 3,
			Subs: []CachedDiag{{Message: "detail"}},
		}},
	}
	if err := cache.Store(hash, entry); err != nil {
		t.Fatal(err)
	}
	got, ok := cache.Load(hash)
	if !ok {
		t.Fatal("entry not found")
	}
	if got.TokenCount != 7 || len(got.Diags) != 1 || got.Diags[0].Message != "boom" {
		t.Fatalf("entry = %+v", got)
	}
	if len(got.Diags[0].Subs) != 1 {
		t.Fatal("sub diagnostics must round-trip")
	}

	if _, ok := cache.Load([32]byte{9}); ok {
		t.Fatal("missing hash must not load")
	}
}

func TestCompileUnitFollowsImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.em"), "using util;\nint main() { return helper(); }")
	writeFile(t, filepath.Join(dir, "util.em"), "int helper() { return 1; }")

	unit, err := CompileUnit(filepath.Join(dir, "main.em"), Options{
		Providers: []source.Provider{source.DiskProvider{Root: dir}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(unit.Files) != 2 {
		t.Fatalf("files = %d", len(unit.Files))
	}
	if unit.HasErrors() {
		t.Fatalf("unexpected errors in unit")
	}
}

func TestCompileUnitCycleSafe(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.em"), "using b;\nint fa() { return 1; }")
	writeFile(t, filepath.Join(dir, "b.em"), "using a;\nint fb() { return 2; }")

	unit, err := CompileUnit(filepath.Join(dir, "a.em"), Options{
		Providers: []source.Provider{source.DiskProvider{Root: dir}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(unit.Files) != 2 {
		t.Fatalf("files = %d, want 2 (cycle must not loop)", len(unit.Files))
	}
}

func TestCompileUnitUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.em"), "using ghost;\nint main() { return 0; }")

	unit, err := CompileUnit(filepath.Join(dir, "main.em"), Options{
		Providers: []source.Provider{source.DiskProvider{Root: dir}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !unit.HasErrors() {
		t.Fatal("unresolved import must be diagnosed")
	}
}
