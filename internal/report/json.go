package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// jsonDocument is the machine-readable report shape. Raw definition
// bodies are included only on request; the diff itself always operates
// on normalized text.
type jsonDocument struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Source      string          `json:"source"`
	Target      string          `json:"target"`
	Options     jsonOptions     `json:"options"`
	Summary     jsonSummary     `json:"summary"`
	Added       []jsonProcedure `json:"added"`
	Removed     []jsonProcedure `json:"removed"`
	Unchanged   []string        `json:"unchanged"`
	Modified    []jsonModified  `json:"modified"`
	Anomalies   []jsonAnomaly   `json:"anomalies"`
}

type jsonOptions struct {
	StripComments      bool   `json:"strip_comments"`
	CollapseWhitespace bool   `json:"collapse_whitespace"`
	LineEnding         string `json:"line_ending"`
}

type jsonSummary struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
	Anomalies int `json:"anomalies"`
}

type jsonProcedure struct {
	Database   string `json:"database"`
	Schema     string `json:"schema"`
	Name       string `json:"name"`
	CreateDate string `json:"create_date,omitempty"`
	ModifyDate string `json:"modify_date,omitempty"`
	Definition string `json:"definition,omitempty"`
}

type jsonModified struct {
	Source     jsonProcedure  `json:"source"`
	Target     jsonProcedure  `json:"target"`
	Similarity float64        `json:"similarity"`
	Diff       []jsonDiffLine `json:"diff"`
}

type jsonDiffLine struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

type jsonAnomaly struct {
	Kind    string `json:"kind"`
	Source  string `json:"source"`
	Line    int    `json:"line,omitempty"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// RenderJSON writes the comparison result as an indented JSON document.
// When includeRaw is true each procedure carries its verbatim definition
// body alongside the normalized diff.
func RenderJSON(w io.Writer, result *sprocdiff.ComparisonResult, includeRaw bool) error {
	doc := jsonDocument{
		RunID:       result.RunID.String(),
		GeneratedAt: result.GeneratedAt,
		Source:      result.SourceLabel,
		Target:      result.TargetLabel,
		Options: jsonOptions{
			StripComments:      result.Options.StripComments,
			CollapseWhitespace: result.Options.CollapseWhitespace,
			LineEnding:         result.Options.LineEndingOrDefault(),
		},
		Summary: jsonSummary{
			Added:     len(result.Added),
			Removed:   len(result.Removed),
			Modified:  len(result.Modified),
			Unchanged: len(result.Unchanged),
			Anomalies: len(result.Anomalies),
		},
		Added:     []jsonProcedure{},
		Removed:   []jsonProcedure{},
		Unchanged: []string{},
		Modified:  []jsonModified{},
		Anomalies: []jsonAnomaly{},
	}

	for _, rec := range result.Added {
		doc.Added = append(doc.Added, toJSONProcedure(rec, includeRaw))
	}
	for _, rec := range result.Removed {
		doc.Removed = append(doc.Removed, toJSONProcedure(rec, includeRaw))
	}
	for _, pair := range result.Unchanged {
		doc.Unchanged = append(doc.Unchanged, pair.Source.FullName())
	}
	for _, m := range result.Modified {
		jm := jsonModified{
			Source:     toJSONProcedure(m.Source, includeRaw),
			Target:     toJSONProcedure(m.Target, includeRaw),
			Similarity: m.Similarity,
			Diff:       make([]jsonDiffLine, 0, len(m.Diff)),
		}
		for _, op := range m.Diff {
			jm.Diff = append(jm.Diff, jsonDiffLine{Op: op.Op.String(), Text: op.Text})
		}
		doc.Modified = append(doc.Modified, jm)
	}
	for _, a := range result.Anomalies {
		doc.Anomalies = append(doc.Anomalies, jsonAnomaly{
			Kind:    string(a.Kind),
			Source:  a.Source,
			Line:    a.Line,
			Key:     a.Key,
			Message: a.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSONProcedure(rec sprocdiff.ProcedureRecord, includeRaw bool) jsonProcedure {
	p := jsonProcedure{
		Database: rec.Database,
		Schema:   rec.Schema,
		Name:     rec.Name,
	}
	if !rec.CreateDate.IsZero() {
		p.CreateDate = rec.CreateDate.Format(sprocdiff.TimestampLayout)
	}
	if !rec.ModifyDate.IsZero() {
		p.ModifyDate = rec.ModifyDate.Format(sprocdiff.TimestampLayout)
	}
	if includeRaw {
		p.Definition = rec.Definition
	}
	return p
}
