package diagfmt

import (
	"encoding/json"
	"io"

	"ember/internal/diag"
	"ember/internal/source"
)

// LocationJSON is a diagnostic location in the JSON schema.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON is one diagnostic in the JSON schema.
type DiagnosticJSON struct {
	Severity string           `json:"severity"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Location *LocationJSON    `json:"location,omitempty"`
	Subs     []DiagnosticJSON `json:"sub_diagnostics,omitempty"`
}

// DiagnosticsOutput is the JSON root.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// WriteJSON writes the bag as indented JSON, context-less first.
func WriteJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, bag.Len())}
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			break
		}
		out.Diagnostics = append(out.Diagnostics, toJSON(d, fs, opts))
	}
	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(d diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
	}
	if d.Positioned {
		out.Location = makeLocation(d, fs, opts.PathMode)
	}
	for _, sub := range d.Subs {
		out.Subs = append(out.Subs, toJSON(sub, fs, opts))
	}
	return out
}

func makeLocation(d diag.Diagnostic, fs *source.FileSet, mode PathMode) *LocationJSON {
	loc := &LocationJSON{File: "<unknown>"}
	if fs != nil {
		if f := fs.Get(d.File); f != nil {
			loc.File = f.FormatPath(mode.format(), fs.BaseDir())
		}
	}
	if !d.Pos.IsUnknown() {
		loc.StartByte = d.Pos.Start.Offset
		loc.EndByte = d.Pos.End.Offset
		loc.StartLine = d.Pos.Start.Line
		loc.StartCol = d.Pos.Start.Col
		loc.EndLine = d.Pos.End.Line
		loc.EndCol = d.Pos.End.Col
	}
	return loc
}
