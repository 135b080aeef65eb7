package diag

import (
	"fmt"

	"ember/internal/source"
)

// Diagnostic is a level-tagged message, optionally positioned, with a
// tree of sub-diagnostics. Diagnostics are values; the sub-error slice
// is owned by the diagnostic and never shared after Add.
//
// The original toolchain could attach a debug breakpoint to a
// diagnostic; that has no Go equivalent and is intentionally absent.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Pos        source.Position
	File       source.FileID
	Positioned bool
	Subs       []Diagnostic
}

// New creates a positioned diagnostic.
func New(sev Severity, code Code, pos source.Position, file source.FileID, msg string) Diagnostic {
	return Diagnostic{
		Severity:   sev,
		Code:       code,
		Message:    msg,
		Pos:        pos,
		File:       file,
		Positioned: true,
	}
}

// NewGlobal creates a context-less diagnostic.
func NewGlobal(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		File:     source.NoFileID,
	}
}

// WithSub returns a copy of d with sub appended to its sub-error tree.
func (d Diagnostic) WithSub(sub Diagnostic) Diagnostic {
	subs := make([]Diagnostic, 0, len(d.Subs)+1)
	subs = append(subs, d.Subs...)
	subs = append(subs, sub)
	d.Subs = subs
	return d
}

// Equal reports whether two diagnostics are the same message at the same
// place. Sub-errors participate structurally.
func (d Diagnostic) Equal(other Diagnostic) bool {
	if d.Severity != other.Severity || d.Code != other.Code ||
		d.Message != other.Message || d.Positioned != other.Positioned {
		return false
	}
	if d.Positioned && (d.Pos != other.Pos || d.File != other.File) {
		return false
	}
	if len(d.Subs) != len(other.Subs) {
		return false
	}
	for i := range d.Subs {
		if !d.Subs[i].Equal(other.Subs[i]) {
			return false
		}
	}
	return true
}

// IsError reports whether the diagnostic is error-level.
func (d Diagnostic) IsError() bool {
	return d.Severity == SevError
}

func (d Diagnostic) String() string {
	if d.Positioned {
		return fmt.Sprintf("%s (%s): %s", d.Severity, d.Pos, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}
