package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

// Success styles a confirmation message.
func Success(text string) string { return render(successStyle, text) }

// Error styles a failure message.
func Error(text string) string { return render(errorStyle, text) }

// Muted styles secondary text.
func Muted(text string) string { return render(mutedStyle, text) }

// Header styles a section header.
func Header(text string) string { return render(headerStyle, text) }

func render(style lipgloss.Style, text string) string {
	if text == "" || !ANSIEnabled() {
		return text
	}
	return style.Render(text)
}
