package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todokit/internal/config"
	"github.com/idilsaglam/todokit/internal/model"
	"github.com/idilsaglam/todokit/internal/store/liststore"
	"github.com/idilsaglam/todokit/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
	focusAdd
	focusDelete
	focusCount
)

const (
	buttonAdd = iota
	buttonDelete
)

// snapshotMsg carries a new list from the store's watch channel.
type snapshotMsg model.TodoList

// watchClosedMsg means the store stopped feeding us.
type watchClosedMsg struct{}

// Model is the Bubble Tea model for the interactive list.
// It only mutates the store; what it shows always comes back through Watch.
type Model struct {
	store   *liststore.Store
	updates <-chan model.TodoList
	stop    func()

	theme ui.Theme
	title ui.Title
	cfg   config.Config
	keys  keyMap

	list  list.Model
	input textinput.Model
	focus focus
	count int
}

// New builds the model. updates should come from store.Watch; stop is called
// on quit to end that watch.
func New(s *liststore.Store, updates <-chan model.TodoList, stop func(), th ui.Theme, cfg config.Config) Model {
	l := list.New(nil, itemDelegate{theme: th}, 60, 10)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = th.Muted
	// quitting goes through our own binding so the watch gets stopped
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	ti.Focus()

	if stop == nil {
		stop = func() {}
	}
	return Model{
		store:   s,
		updates: updates,
		stop:    stop,
		theme:   th,
		title:   ui.Title{Label: cfg.Title},
		cfg:     cfg,
		keys:    defaultKeys(),
		list:    l,
		input:   ti,
		focus:   focusInput,
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, s *liststore.Store, th ui.Theme, cfg config.Config, opts ...tea.ProgramOption) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(s, s.Watch(watchCtx), cancel, th, cfg)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func waitForSnapshot(ch <-chan model.TodoList) tea.Cmd {
	return func() tea.Msg {
		l, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return snapshotMsg(l)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.updates), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(msg.Width-6, 20), max(msg.Height-12, 3))
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case snapshotMsg:
		m.count = len(msg)
		cmd := m.list.SetItems(toListItems(model.TodoList(msg)))
		return m, tea.Batch(cmd, waitForSnapshot(m.updates))

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % focusCount), nil
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
		case key.Matches(msg, m.keys.Press):
			switch m.focus {
			case focusInput, focusAdd:
				return m.press(buttonAdd), nil
			case focusDelete:
				return m.press(buttonDelete), nil
			}
			return m, nil
		case m.focus == focusList && key.Matches(msg, m.keys.Delete):
			return m.press(buttonDelete), nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusList:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.list.SetDelegate(itemDelegate{theme: m.theme, active: f == focusList})
	return m
}

// buttons binds the current input text and selection into click handlers.
func (m Model) buttons() []ui.Button {
	text := model.TodoItem(m.input.Value())
	sel, hasSel := m.selected()
	s := m.store
	return []ui.Button{
		buttonAdd: {
			Label:   "Add",
			Color:   m.cfg.AddColor,
			OnClick: func() { s.Add(text) },
		},
		buttonDelete: {
			Label: "Delete",
			Color: m.cfg.DeleteColor,
			OnClick: func() {
				if hasSel {
					s.Delete(sel)
				}
			},
		},
	}
}

func (m Model) press(i int) Model {
	m.buttons()[i].Click()
	if i == buttonAdd {
		m.input.Reset()
	}
	return m
}

func (m Model) selected() (model.TodoItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return "", false
	}
	return it.item, true
}

func (m Model) View() string {
	r := m.theme.Renderer

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.title.Render(r),
		"  ",
		m.theme.Muted.Render(fmt.Sprintf("%d items", m.count)),
	)

	body := m.list.View()
	if m.count == 0 {
		body = m.theme.Muted.Render("no items")
	}

	btnFocus := -1
	switch m.focus {
	case focusAdd:
		btnFocus = buttonAdd
	case focusDelete:
		btnFocus = buttonDelete
	}

	help := m.theme.Muted.Render("tab focus • enter press • d delete • esc quit")
	return m.theme.Panel([]string{
		header,
		"",
		body,
		"",
		m.input.View(),
		ui.Row(r, btnFocus, m.buttons()...),
		"",
		help,
	})
}
