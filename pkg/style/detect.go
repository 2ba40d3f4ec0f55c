package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorSupported reports whether output written to f should carry colors.
func ColorSupported(f *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}

// SetColorEnabled switches both lipgloss and pterm output between colored
// and plain.
func SetColorEnabled(enabled bool) {
	if enabled {
		pterm.EnableColor()
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}
