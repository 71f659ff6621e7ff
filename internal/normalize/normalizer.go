package normalize

import (
	"strings"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Normalizer applies the configured normalization rules to definition
// text. Normalizer is a small value type and is safe for concurrent use
// by multiple goroutines.
type Normalizer struct {
	opts sprocdiff.NormalizeOptions
}

// New creates a Normalizer after validating the options. Option
// validation happens here, before any parsing or comparison, so an
// invalid configuration never reaches the pipeline.
func New(opts sprocdiff.NormalizeOptions) (Normalizer, error) {
	if err := opts.Validate(); err != nil {
		return Normalizer{}, err
	}
	return Normalizer{opts: opts}, nil
}

// Options returns the options this normalizer was built with.
func (n Normalizer) Options() sprocdiff.NormalizeOptions {
	return n.opts
}

// Normalize transforms raw definition text into its canonical form.
// The result is deterministic and idempotent for any input.
func (n Normalizer) Normalize(text string) string {
	if n.opts.StripComments {
		text = stripComments(text)
	}

	// Work on LF internally; the configured convention is applied when
	// the lines are rejoined.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	dropEmpty := n.opts.StripComments || n.opts.CollapseWhitespace

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if n.opts.CollapseWhitespace {
			line = collapseHorizontal(line)
		}
		line = strings.TrimRight(line, " \t")
		if line == "" && dropEmpty {
			continue
		}
		out = append(out, line)
	}

	// Without the empty-line rule a trailing newline would survive as a
	// phantom last line; drop it so round trips stay stable.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	sep := "\n"
	if n.opts.LineEndingOrDefault() == sprocdiff.LineEndingCRLF {
		sep = "\r\n"
	}
	return strings.Join(out, sep)
}

// Lines returns the normalized text split into lines, the unit the diff
// operates on. An empty normalization yields no lines rather than one
// empty line.
func (n Normalizer) Lines(text string) []string {
	normalized := n.Normalize(text)
	if normalized == "" {
		return nil
	}
	if n.opts.LineEndingOrDefault() == sprocdiff.LineEndingCRLF {
		return strings.Split(normalized, "\r\n")
	}
	return strings.Split(normalized, "\n")
}

// collapseHorizontal collapses runs of spaces and tabs to a single space.
func collapseHorizontal(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	lastWasSpace := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == ' ' || ch == '\t' {
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteByte(ch)
		lastWasSpace = false
	}
	return b.String()
}

type stripState int

const (
	stateNormal stripState = iota
	stateLineComment
	stateBlockComment
	stateSingleQuote
)

// stripComments removes SQL comments while preserving single-quoted
// string literals. Handles -- line comments, nested /* */ block
// comments, and '' quote escapes. Line structure is preserved: a line
// comment consumes text up to, not including, its newline, and newlines
// inside block comments are kept so removal never joins adjacent lines.
func stripComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := stateNormal
	blockDepth := 0
	i := 0

	for i < len(content) {
		ch := content[i]
		var next byte
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch state {
		case stateNormal:
			if ch == '-' && next == '-' {
				state = stateLineComment
				i += 2
			} else if ch == '/' && next == '*' {
				state = stateBlockComment
				blockDepth = 1
				i += 2
			} else if ch == '\'' {
				state = stateSingleQuote
				b.WriteByte(ch)
				i++
			} else {
				b.WriteByte(ch)
				i++
			}

		case stateLineComment:
			if ch == '\n' || ch == '\r' {
				state = stateNormal
				// Newline handled by the normal state.
			} else {
				i++
			}

		case stateBlockComment:
			if ch == '/' && next == '*' {
				blockDepth++
				i += 2
			} else if ch == '*' && next == '/' {
				blockDepth--
				i += 2
				if blockDepth == 0 {
					state = stateNormal
				}
			} else {
				if ch == '\n' {
					b.WriteByte(ch)
				}
				i++
			}

		case stateSingleQuote:
			b.WriteByte(ch)
			if ch == '\'' {
				if next == '\'' {
					b.WriteByte(next)
					i += 2
				} else {
					state = stateNormal
					i++
				}
			} else {
				i++
			}
		}
	}

	return b.String()
}
