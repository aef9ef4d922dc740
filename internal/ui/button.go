package ui

import "github.com/charmbracelet/lipgloss"

// DefaultButtonColor is used when a Button has no Color.
const DefaultButtonColor = "#ff5722"

// Button is a labeled, clickable block of color.
type Button struct {
	Label   string
	OnClick func()
	Color   string // hex or ANSI color; DefaultButtonColor when empty
}

// Click runs OnClick if one is set.
func (b Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b Button) color() string {
	if b.Color == "" {
		return DefaultButtonColor
	}
	return b.Color
}

// Render draws the button on r. A focused button is drawn bold and
// underlined, the terminal's stand-in for hover and press.
func (b Button) Render(r *lipgloss.Renderer, focused bool) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := r.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(b.color())).
		Padding(0, 2)
	if focused {
		st = st.Bold(true).Underline(true)
	}
	return st.Render(b.Label)
}

// Row renders buttons side by side with one space between them.
// focus is the index of the focused button, or -1.
func Row(r *lipgloss.Renderer, focus int, buttons ...Button) string {
	parts := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b.Render(r, i == focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
