package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func sampleBag() (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.em", []byte("int x = ;\n"))

	bag := diag.NewBag()
	bag.AddGlobal(diag.SevWarning, diag.UnknownCode, "global note")

	pos := source.NewPosition(
		source.Point{Offset: 8, Line: 1, Col: 9},
		source.Point{Offset: 9, Line: 1, Col: 10},
	)
	d := diag.New(diag.SevError, diag.SynExpectedExpression, pos, id, "Expected an expression")
	d = d.WithSub(diag.New(diag.SevHint, diag.UnknownCode, pos, id, "value required here"))
	bag.Add(d)
	return bag, fs
}

func TestPrettyFormat(t *testing.T) {
	bag, fs := sampleBag()

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSnippet: true})
	out := buf.String()

	if !strings.Contains(out, "ERROR (sample.em:1:9): Expected an expression") {
		t.Fatalf("output = %q", out)
	}
	// context-less first
	if strings.Index(out, "global note") > strings.Index(out, "Expected an expression") {
		t.Fatal("context-less diagnostics must print first")
	}
	// sub-diagnostic indented
	if !strings.Contains(out, "  HINT") {
		t.Fatalf("sub diagnostic missing: %q", out)
	}
	// snippet with caret
	if !strings.Contains(out, "int x = ;") || !strings.Contains(out, "^") {
		t.Fatalf("snippet missing: %q", out)
	}
}

func TestPrettyNilFileSet(t *testing.T) {
	bag, _ := sampleBag()
	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{ShowSnippet: true})
	if !strings.Contains(buf.String(), "<unknown>") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	bag, fs := sampleBag()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	var withLoc *DiagnosticJSON
	for i := range out.Diagnostics {
		if out.Diagnostics[i].Location != nil {
			withLoc = &out.Diagnostics[i]
		}
	}
	if withLoc == nil {
		t.Fatal("positioned diagnostic missing location")
	}
	if withLoc.Location.StartLine != 1 || withLoc.Location.StartCol != 9 {
		t.Fatalf("location = %+v", withLoc.Location)
	}
	if len(withLoc.Subs) != 1 {
		t.Fatal("sub diagnostics must serialize")
	}
	if withLoc.Code != "EMB3003" {
		t.Fatalf("code = %q", withLoc.Code)
	}
}

func TestWriteJSONMax(t *testing.T) {
	bag, fs := sampleBag()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Fatalf("count = %d, want 1", out.Count)
	}
}

func TestWriteSarif(t *testing.T) {
	bag, fs := sampleBag()
	var buf bytes.Buffer
	if err := WriteSarif(&buf, bag, fs, SarifRunMeta{ToolName: "ember", ToolVersion: "test"}); err != nil {
		t.Fatal(err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["version"] != "2.1.0" {
		t.Fatalf("version = %v", out["version"])
	}
	runs := out["runs"].([]any)
	results := runs[0].(map[string]any)["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
}
