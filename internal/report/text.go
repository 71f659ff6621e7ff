package report

import (
	"fmt"
	"io"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Renderer writes human-readable comparison reports.
type Renderer struct {
	color   bool
	context int
}

// NewRenderer creates a text renderer. context is the number of
// unchanged lines shown around each change hunk; negative values fall
// back to the default.
func NewRenderer(color bool, context int) *Renderer {
	if context < 0 {
		context = sprocdiff.DefaultDiffContext
	}
	return &Renderer{color: color, context: context}
}

// RenderText writes the full comparison report.
func (r *Renderer) RenderText(w io.Writer, result *sprocdiff.ComparisonResult) error {
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	p("%s", r.paint(headingStyle, "STORED PROCEDURE COMPARISON"))
	p("Run:       %s", result.RunID)
	p("Generated: %s", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	p("Source:    %s", result.SourceLabel)
	p("Target:    %s", result.TargetLabel)
	p("Options:   stripComments=%t collapseWhitespace=%t lineEnding=%s",
		result.Options.StripComments,
		result.Options.CollapseWhitespace,
		result.Options.LineEndingOrDefault())
	p("")
	p("Summary: %d added, %d removed, %d modified, %d unchanged",
		len(result.Added), len(result.Removed), len(result.Modified), len(result.Unchanged))

	if len(result.Removed) > 0 {
		p("")
		p("%s", r.paint(headingStyle, fmt.Sprintf("REMOVED (%d)", len(result.Removed))))
		for _, rec := range result.Removed {
			p("  %s", r.paint(removedStyle, "- "+rec.FullName()))
		}
	}

	if len(result.Added) > 0 {
		p("")
		p("%s", r.paint(headingStyle, fmt.Sprintf("ADDED (%d)", len(result.Added))))
		for _, rec := range result.Added {
			p("  %s", r.paint(addedStyle, "+ "+rec.FullName()))
		}
	}

	if len(result.Modified) > 0 {
		p("")
		p("%s", r.paint(headingStyle, fmt.Sprintf("MODIFIED (%d)", len(result.Modified))))
		for _, m := range result.Modified {
			p("")
			p("  %s %s", r.paint(modifiedStyle, "~ "+m.Source.FullName()),
				r.paint(mutedStyle, fmt.Sprintf("(%.1f%% similar)", m.Similarity*100)))
			r.renderDiff(w, m.Diff)
		}
	}

	if len(result.Anomalies) > 0 {
		p("")
		p("%s", r.paint(headingStyle, fmt.Sprintf("PARSE ANOMALIES (%d)", len(result.Anomalies))))
		for _, a := range result.Anomalies {
			p("  %s", r.paint(mutedStyle, "! "+a.String()))
		}
	}

	p("")
	if result.HasDifferences() {
		p("Differences found.")
	} else {
		p("No differences.")
	}
	return nil
}

// renderDiff writes unified-style hunks with the configured context.
func (r *Renderer) renderDiff(w io.Writer, ops []sprocdiff.DiffLine) {
	for _, h := range hunks(ops, r.context) {
		header := fmt.Sprintf("  @@ -%d,%d +%d,%d @@", h.sourceStart, h.sourceLen, h.targetStart, h.targetLen)
		fmt.Fprintln(w, r.paint(mutedStyle, header))
		for _, op := range h.ops {
			switch op.Op {
			case sprocdiff.OpDelete:
				fmt.Fprintln(w, "  "+r.paint(removedStyle, "-"+op.Text))
			case sprocdiff.OpInsert:
				fmt.Fprintln(w, "  "+r.paint(addedStyle, "+"+op.Text))
			default:
				fmt.Fprintln(w, "   "+op.Text)
			}
		}
	}
}

// hunk is one contiguous run of diff operations around changes.
type hunk struct {
	sourceStart, sourceLen int // 1-based line numbers in the source
	targetStart, targetLen int // 1-based line numbers in the target
	ops                    []sprocdiff.DiffLine
}

// hunks groups operations into change regions padded with up to context
// equal lines on each side. Regions whose padding overlaps are merged.
func hunks(ops []sprocdiff.DiffLine, context int) []hunk {
	// Mark which op indexes are kept.
	keep := make([]bool, len(ops))
	for i, op := range ops {
		if op.Op == sprocdiff.OpEqual {
			continue
		}
		lo := i - context
		if lo < 0 {
			lo = 0
		}
		hi := i + context
		if hi > len(ops)-1 {
			hi = len(ops) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	var result []hunk
	srcLine, tgtLine := 1, 1
	i := 0
	for i < len(ops) {
		if !keep[i] {
			// Equal op outside any hunk.
			srcLine++
			tgtLine++
			i++
			continue
		}
		h := hunk{sourceStart: srcLine, targetStart: tgtLine}
		for i < len(ops) && keep[i] {
			op := ops[i]
			h.ops = append(h.ops, op)
			switch op.Op {
			case sprocdiff.OpEqual:
				h.sourceLen++
				h.targetLen++
				srcLine++
				tgtLine++
			case sprocdiff.OpDelete:
				h.sourceLen++
				srcLine++
			case sprocdiff.OpInsert:
				h.targetLen++
				tgtLine++
			}
			i++
		}
		result = append(result, h)
	}
	return result
}
