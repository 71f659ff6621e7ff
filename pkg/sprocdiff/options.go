package sprocdiff

import "fmt"

// Line ending conventions accepted by NormalizeOptions.LineEnding.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// NormalizeOptions selects which normalization rules are applied before
// definitions are compared. Comment stripping is a policy decision, not a
// constant: an exact-provenance audit wants comment edits to count as
// changes, a semantic-drift audit does not.
type NormalizeOptions struct {
	// StripComments removes -- line comments and /* */ block comments
	// (nesting-aware) outside single-quoted string literals.
	StripComments bool

	// CollapseWhitespace collapses runs of horizontal whitespace to a
	// single space and trims trailing whitespace per line.
	CollapseWhitespace bool

	// LineEnding is the convention normalized output uses: "lf" or
	// "crlf". Empty means "lf".
	LineEnding string
}

// DefaultNormalizeOptions returns the settings used when the caller does
// not specify any: strip comments, collapse whitespace, LF endings.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		StripComments:      true,
		CollapseWhitespace: true,
		LineEnding:         LineEndingLF,
	}
}

// Validate checks the options for invalid values. It must be called (and
// must pass) before any parsing or comparison begins.
func (o NormalizeOptions) Validate() error {
	switch o.LineEnding {
	case "", LineEndingLF, LineEndingCRLF:
		return nil
	default:
		return fmt.Errorf("line ending %q is not supported (want %q or %q): %w",
			o.LineEnding, LineEndingLF, LineEndingCRLF, ErrInvalidOptions)
	}
}

// LineEndingOrDefault resolves the empty value to LF.
func (o NormalizeOptions) LineEndingOrDefault() string {
	if o.LineEnding == "" {
		return LineEndingLF
	}
	return o.LineEnding
}
