package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Renderer styles the pieces of an error report.
type Renderer interface {
	// Label renders the leading "Error:" label.
	Label(text string) string
	// Highlight renders the input an error refers to.
	Highlight(text string) string
	// List renders alternatives, one per line.
	List(items []string) string
}

// NewRenderer picks a TerminalRenderer when f supports colors and noColor
// is not set, a PlainRenderer otherwise.
func NewRenderer(f *os.File, noColor bool) Renderer {
	if noColor || !ColorSupported(f) {
		return NewPlainRenderer()
	}
	return NewTerminalRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

func (r *TerminalRenderer) Label(text string) string {
	return ErrorLabelStyle.Render(text)
}

func (r *TerminalRenderer) Highlight(text string) string {
	return HighlightStyle.Render(text)
}

func (r *TerminalRenderer) List(items []string) string {
	if len(items) == 0 {
		return ""
	}
	listItems := make([]pterm.BulletListItem, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, pterm.BulletListItem{Level: 1, Text: item})
	}
	out, err := pterm.DefaultBulletList.WithItems(listItems).Srender()
	if err != nil {
		return NewPlainRenderer().List(items)
	}
	return strings.TrimRight(out, "\n")
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) Label(text string) string {
	return text
}

func (r *PlainRenderer) Highlight(text string) string {
	return fmt.Sprintf("'%s'", text)
}

func (r *PlainRenderer) List(items []string) string {
	var result strings.Builder
	for _, item := range items {
		result.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	return strings.TrimRight(result.String(), "\n")
}
