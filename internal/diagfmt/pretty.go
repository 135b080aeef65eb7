// Package diagfmt renders diagnostics and token dumps for humans and
// machines: colored pretty output, a stable JSON schema, and SARIF.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

// Pretty writes the bag in print order: context-less diagnostics first,
// then positioned ones. Each positioned diagnostic prints as
//
//	LEVEL (file:line:col): message
//
// followed by the source line with a caret run under the span when the
// file resolves through fs. Sub-errors indent by depth.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Global() {
		prettyOne(w, d, fs, opts, 0)
	}
	for _, d := range bag.Positioned() {
		prettyOne(w, d, fs, opts, 0)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, depth int) {
	indent := strings.Repeat("  ", depth)
	level := d.Severity.String()
	if opts.Color {
		level = severityColor(d.Severity).Sprint(level)
	}

	if !d.Positioned {
		fmt.Fprintf(w, "%s%s: %s\n", indent, level, d.Message)
	} else {
		loc := formatLocation(d, fs, opts.PathMode)
		fmt.Fprintf(w, "%s%s (%s): %s\n", indent, level, loc, d.Message)
		if opts.ShowSnippet {
			writeSnippet(w, d, fs, indent, opts.Color)
		}
	}

	for _, sub := range d.Subs {
		prettyOne(w, sub, fs, opts, depth+1)
	}
}

func formatLocation(d diag.Diagnostic, fs *source.FileSet, mode PathMode) string {
	path := "<unknown>"
	if fs != nil {
		if f := fs.Get(d.File); f != nil {
			path = f.FormatPath(mode.format(), fs.BaseDir())
		}
	}
	if d.Pos.IsUnknown() {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, d.Pos.Start.Line, d.Pos.Start.Col)
}

// writeSnippet prints the offending source line with a caret run under
// the diagnostic's span. Caret alignment accounts for wide runes.
func writeSnippet(w io.Writer, d diag.Diagnostic, fs *source.FileSet, indent string, colored bool) {
	if fs == nil || d.Pos.IsUnknown() {
		return
	}
	f := fs.Get(d.File)
	if f == nil {
		return
	}
	line := f.GetLine(d.Pos.Start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "%s  | %s\n", indent, line)

	col := int(d.Pos.Start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	width := 1
	if d.Pos.Start.Line == d.Pos.End.Line && d.Pos.End.Col > d.Pos.Start.Col {
		end := int(d.Pos.End.Col) - 1
		if end > len(line) {
			end = len(line)
		}
		if end > col {
			width = runewidth.StringWidth(line[col:end])
		}
	}
	marker := "^" + strings.Repeat("~", maxInt(width-1, 0))
	if colored {
		marker = severityColor(d.Severity).Sprint(marker)
	}
	fmt.Fprintf(w, "%s  | %s%s\n", indent, strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	case diag.SevInfo:
		return color.New(color.FgCyan)
	case diag.SevHint:
		return color.New(color.FgBlue)
	case diag.SevOptimization:
		return color.New(color.FgGreen)
	case diag.SevFailedOptimization:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Reset)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
