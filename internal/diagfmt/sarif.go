package diagfmt

import (
	"encoding/json"
	"io"

	"ember/internal/diag"
	"ember/internal/source"
)

// Minimal SARIF 2.1.0 writer, enough for CI ingestion.

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine,omitempty"`
	StartColumn uint32 `json:"startColumn,omitempty"`
	EndLine     uint32 `json:"endLine,omitempty"`
	EndColumn   uint32 `json:"endColumn,omitempty"`
}

// WriteSarif writes the bag as one SARIF run.
func WriteSarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: meta.ToolName, Version: meta.ToolVersion}},
	}
	run.Results = make([]sarifResult, 0, bag.Len())
	for _, d := range bag.Items() {
		run.Results = append(run.Results, toSarif(d, fs))
	}

	log := sarifLog{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func toSarif(d diag.Diagnostic, fs *source.FileSet) sarifResult {
	res := sarifResult{
		RuleID:  d.Code.ID(),
		Level:   sarifLevel(d.Severity),
		Message: sarifMessage{Text: d.Message},
	}
	if d.Positioned && fs != nil {
		if f := fs.Get(d.File); f != nil {
			res.Locations = []sarifLocation{{
				PhysicalLocation: sarifPhysical{
					ArtifactLocation: sarifArtifact{URI: f.Path},
					Region: sarifRegion{
						StartLine:   d.Pos.Start.Line,
						StartColumn: d.Pos.Start.Col,
						EndLine:     d.Pos.End.Line,
						EndColumn:   d.Pos.End.Col,
					},
				},
			}}
		}
	}
	return res
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}
