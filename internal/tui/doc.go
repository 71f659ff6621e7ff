// Package tui provides the interactive viewer for browsing modified
// procedures and their diffs, plus terminal-mode detection used to gate
// color output and interactivity.
package tui
