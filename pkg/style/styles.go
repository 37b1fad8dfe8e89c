package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of styles bound to one output renderer
type Styles struct {
	Prefix    lipgloss.Style
	Direction lipgloss.Style
	Added     lipgloss.Style
	Removed   lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Italic    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Prefix:    r.NewStyle().Foreground(PrefixColor),
		Direction: r.NewStyle().Foreground(DirectionColor),
		Added:     r.NewStyle().Foreground(AddedColor),
		Removed:   r.NewStyle().Foreground(RemovedColor),
		Highlight: r.NewStyle().Foreground(HighlightColor),
		Error:     r.NewStyle().Foreground(RemovedColor).Bold(true),
		Italic:    r.NewStyle().Italic(true),
	}
}
