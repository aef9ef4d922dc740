package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todokit/internal/model"
	"github.com/idilsaglam/todokit/internal/ui"
)

// listItem adapts a TodoItem to bubbles/list.Item.
type listItem struct {
	item model.TodoItem
}

func (i listItem) FilterValue() string { return string(i.item) }

func toListItems(l model.TodoList) []list.Item {
	out := make([]list.Item, 0, len(l))
	for _, it := range l {
		out = append(out, listItem{item: it})
	}
	return out
}

// itemDelegate draws each item on a single line.
type itemDelegate struct {
	theme  ui.Theme
	active bool // list has focus
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	text := string(it.item)
	if text == "" {
		text = d.theme.Muted.Render("(empty)")
	}
	line := fmt.Sprintf("%s %s", d.theme.Muted.Render(d.theme.Bullet), text)
	prefix := "  "
	if index == m.Index() && d.active {
		prefix = d.theme.Selected.Render(d.theme.Cursor)
	}
	fmt.Fprintln(w, prefix+line)
}
