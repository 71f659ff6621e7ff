package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorAdded    = lipgloss.Color("34")  // Green
	colorRemoved  = lipgloss.Color("196") // Red
	colorModified = lipgloss.Color("214") // Orange
	colorMuted    = lipgloss.Color("245") // Gray
	colorHeading  = lipgloss.Color("39")  // Blue
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	addedStyle    = lipgloss.NewStyle().Foreground(colorAdded)
	removedStyle  = lipgloss.NewStyle().Foreground(colorRemoved)
	modifiedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorModified)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)

// paint applies a style only when color output is enabled, so piped and
// CI output stays plain.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
