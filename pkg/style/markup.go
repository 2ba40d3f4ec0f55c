package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser handles parsing and rendering of markup tags such as
// [heading]Operations[/heading].
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"heading":   HeadingStyle,
			"error":     ErrorLabelStyle,
			"highlight": HighlightStyle,
			"code":      CodeStyle,
			"muted":     MutedStyle,
			"bold":      lipgloss.NewStyle().Bold(true),
		},
	}
}

// Render processes markup text and returns styled output. Nested tags are
// handled by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	result := text

	for {
		oldResult := result

		for tag, style := range p.styles {
			pattern := regexp.MustCompile(`\[` + tag + `\](?s:(.*?))\[/` + tag + `\]`)
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}
				return style.Render(submatch[1])
			})
		}

		if result == oldResult {
			return result
		}
	}
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

