package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel renders lines inside a framed box using the theme's border.
func (t Theme) Panel(lines []string) string {
	border := t.Renderer.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// OK writes a success line to w.
func (t Theme) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

// Fail writes an error line to w.
func (t Theme) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
