// Package report renders a ComparisonResult for consumers.
//
// Two renderers exist: a human-oriented text report (optionally colored
// with lipgloss when stdout is an interactive terminal) and a
// machine-oriented JSON document. Both render the same structured value;
// the core never owns a rendered string.
package report
