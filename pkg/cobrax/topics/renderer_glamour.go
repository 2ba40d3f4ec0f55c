package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged.
type GlamourRenderer struct {
	// NoColor selects the "notty" style, for pipes and NO_COLOR.
	NoColor bool
	// Width wraps output at the given column; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer creates a markdown renderer that picks its style from
// the terminal background.
func NewGlamourRenderer(noColor bool) *GlamourRenderer {
	return &GlamourRenderer{NoColor: noColor}
}

// Render converts markdown to terminal output, falling back to the raw
// content when glamour fails.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.NoColor {
		options = []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
