package sprocdiff_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, sprocdiff.ExitSuccess},
		{"general error", errors.New("something went wrong"), sprocdiff.ExitGeneralError},
		{"invalid options", sprocdiff.ErrInvalidOptions, sprocdiff.ExitOptionsError},
		{"wrapped invalid options", fmt.Errorf("format %q: %w", "xml", sprocdiff.ErrInvalidOptions), sprocdiff.ExitOptionsError},
		{"input unreadable", sprocdiff.ErrInputUnreadable, sprocdiff.ExitInputError},
		{"empty input", sprocdiff.ErrEmptyInput, sprocdiff.ExitInputError},
		{"input error struct", sprocdiff.NewInputError(sprocdiff.SideSource, "a.txt", errors.New("boom")), sprocdiff.ExitInputError},
		{"unknown flag", errors.New("unknown flag --foo"), sprocdiff.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), sprocdiff.ExitUsageError},
		{"unknown command", errors.New(`unknown command "comapre" for "sprocdiff"`), sprocdiff.ExitUsageError},
		{"accepts args", errors.New("accepts 2 arg(s), received 1"), sprocdiff.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--context"`), sprocdiff.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sprocdiff.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestInputError_Unwrap(t *testing.T) {
	err := sprocdiff.NewInputError(sprocdiff.SideTarget, "b.txt",
		fmt.Errorf("%w: permission denied", sprocdiff.ErrInputUnreadable))

	if !errors.Is(err, sprocdiff.ErrInputUnreadable) {
		t.Error("expected errors.Is to reach the wrapped sentinel")
	}

	var inputErr *sprocdiff.InputError
	if !errors.As(err, &inputErr) {
		t.Fatal("expected errors.As to find InputError")
	}
	if inputErr.Side != sprocdiff.SideTarget {
		t.Errorf("Side = %q, want %q", inputErr.Side, sprocdiff.SideTarget)
	}
	if inputErr.Path != "b.txt" {
		t.Errorf("Path = %q, want %q", inputErr.Path, "b.txt")
	}
}
