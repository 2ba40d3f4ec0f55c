package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrorLabelStyle marks the "Error:" prefix of reported errors.
	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// HighlightStyle marks the user input an error refers to.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
