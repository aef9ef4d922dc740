package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box border.
// Components and the TUI pull their styles from a Theme.
type Theme struct {
	Name string

	Renderer *lipgloss.Renderer

	Title, Muted, Accent, Success, Error, Selected lipgloss.Style

	Bullet, Cursor string
	Border         lipgloss.Border
	BorderColor    lipgloss.TerminalColor
}

// ColorMode controls whether ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// NewRenderer returns a lipgloss renderer for w honoring mode.
// In auto mode the profile is detected from w, so buffers get plain text.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewTheme builds the named theme on r. Unknown names fall back to classic.
// A nil r gets a fresh stdout renderer; the mono theme changes its renderer's
// profile, so the shared default renderer is never used here.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.NewRenderer(os.Stdout)
	}
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Renderer:    r,
			Title:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       r.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      r.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Bullet:      "◆",
			Cursor:      "▶ ",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		r.SetColorProfile(termenv.Ascii)
		plain := r.NewStyle()
		return Theme{
			Name:        "mono",
			Renderer:    r,
			Title:       plain,
			Muted:       plain,
			Accent:      plain,
			Success:     plain,
			Error:       plain,
			Selected:    plain,
			Bullet:      "-",
			Cursor:      "> ",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Renderer:    r,
			Title:       r.NewStyle().Bold(true),
			Muted:       r.NewStyle().Faint(true),
			Accent:      r.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    r.NewStyle().Bold(true).Reverse(true),
			Bullet:      "•",
			Cursor:      "> ",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}
