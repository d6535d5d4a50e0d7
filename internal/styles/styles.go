// Package styles defines the shared terminal styles for rpn output.
// Rendering degrades to plain text when the stream is not a terminal, so
// piped output and tests see the bare strings.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// ErrorStyle highlights the error prefix on diagnostics.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	// HeaderStyle marks section headings in the usage text.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// SubtleStyle dims secondary lines such as examples.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderError formats a diagnostic line for stderr.
func RenderError(message string) string {
	return ErrorStyle.Render("Error:") + " " + message
}

// RenderHeader formats a usage section heading.
func RenderHeader(text string) string {
	return HeaderStyle.Render(text)
}
