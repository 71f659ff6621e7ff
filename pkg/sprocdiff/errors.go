package sprocdiff

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios. These enable callers to
// distinguish error types using errors.Is().
var (
	// ErrInvalidOptions indicates an invalid normalizer or output
	// configuration. Surfaced before any parsing begins.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrInputUnreadable indicates a dump file could not be read.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrEmptyInput indicates a dump file was empty where a non-empty
	// input was required.
	ErrEmptyInput = errors.New("input is empty")
)

// Input sides, used to identify which of the two dump files an
// InputError concerns.
const (
	SideSource = "source"
	SideTarget = "target"
)

// InputError is a fatal failure reading one of the two inputs. It names
// the side (source or target) and the offending path so the caller can
// report which file and which stage failed.
type InputError struct {
	Side string // SideSource or SideTarget
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s dump %s: %v", e.Side, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError wraps a read failure with its side and path.
func NewInputError(side, path string, err error) *InputError {
	return &InputError{Side: side, Path: path, Err: err}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidOptions):
		return ExitOptionsError
	case errors.Is(err, ErrInputUnreadable), errors.Is(err, ErrEmptyInput):
		return ExitInputError
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return ExitInputError
	}

	// Cobra reports argument and flag misuse as plain errors.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts 2 arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
