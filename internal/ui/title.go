package ui

import "github.com/charmbracelet/lipgloss"

// Title is a heading. It sits flush with the content above it.
type Title struct {
	Label string
}

// Render draws the label as a bold heading on r.
func (t Title) Render(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.NewStyle().Bold(true).MarginTop(0).Render(t.Label)
}
