package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todokit/internal/model"
)

// maxItemWidth is the widest an item may render, in terminal cells.
const maxItemWidth = 80

// print writes l to stdout in the selected format.
func (a *app) print(l model.TodoList) error {
	switch a.format {
	case "json":
		b, err := json.MarshalIndent(l.Strings(), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(a.env.Stdout, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(l.Strings())
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = a.env.Stdout.Write(b)
		return err
	default:
		_, err := fmt.Fprintln(a.env.Stdout, a.theme.Panel(a.textLines(l)))
		return err
	}
}

func (a *app) textLines(l model.TodoList) []string {
	t := a.theme
	header := fmt.Sprintf("%s  %s %d",
		t.Title.Render(a.cfg.Title),
		t.Accent.Render("Total"), len(l),
	)
	lines := []string{header, ""}
	if len(l) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for i, it := range l {
		text := ansi.Truncate(string(it), maxItemWidth, "...")
		if text == "" {
			text = t.Muted.Render("(empty)")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Muted.Render(t.Bullet), text))
	}
	return lines
}
