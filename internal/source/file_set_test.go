package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("int x;\nint y;\n"))

	f := fs.Get(id)
	if f == nil {
		t.Fatal("file not found")
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatal("virtual flag not set")
	}
	if len(f.LineIdx) != 2 {
		t.Fatalf("line index = %v, want 2 entries", f.LineIdx)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.em", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.em")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "a\nb\n" {
		t.Fatalf("content = %q, want normalized", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %v, want BOM and CRLF recorded", f.Flags)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a/b.em", []byte("x"))

	if _, ok := fs.GetByPath("a/b.em"); !ok {
		t.Fatal("expected lookup to succeed")
	}
	if _, ok := fs.GetByPath("missing.em"); ok {
		t.Fatal("expected lookup to fail")
	}
}

func TestGetNoFile(t *testing.T) {
	fs := NewFileSet()
	if fs.Get(NoFileID) != nil {
		t.Fatal("NoFileID must resolve to nil")
	}
}
