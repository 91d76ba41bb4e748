// Package tui is the interactive todo list: a debounced search box, an
// inline add field and the list itself.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/search"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusAdd
)

// chrome is the number of lines around the list: header, search,
// add field, borders.
const chrome = 8

// Options tune the list screen.
type Options struct {
	SearchDelay  time.Duration
	InitialQuery string
}

// Model is the Bubble Tea model for the list screen.
type Model struct {
	ctx context.Context
	api Backend
	log *log.Logger

	store   *store.TodoStore
	search  search.Controller
	add     textinput.Model
	list    list.Model
	spinner spinner.Model
	keys    keyMap

	focus    focus
	inFlight int  // fetches not yet answered
	settled  bool // a fetch has answered, successfully or not
	quitting bool

	initCmd tea.Cmd
}

// New builds the model. The first fetch is scheduled like any other search:
// after one quiet period.
func New(ctx context.Context, api Backend, logger *log.Logger, opt Options) Model {
	keys := defaultKeys()

	w, h := ui.Size()
	l := list.New(nil, itemDelegate{}, w-2, max(h-chrome, 1))
	l.SetShowTitle(true)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "Add a task..."
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		api:     api,
		log:     logger,
		store:   store.New(),
		search:  search.New(opt.SearchDelay).SetTerm(opt.InitialQuery),
		add:     ti,
		list:    l,
		spinner: sp,
		keys:    keys,
	}
	var schedule tea.Cmd
	m.search, schedule = m.search.Schedule()
	m.initCmd = tea.Batch(schedule, m.spinner.Tick)
	m.syncList()
	return m
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, api Backend, logger *log.Logger, opt Options) error {
	p := tea.NewProgram(New(ctx, api, logger, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (m Model) Init() tea.Cmd { return m.initCmd }

// Todos returns the displayed list.
func (m Model) Todos() []model.Todo { return m.store.Items() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, max(msg.Height-chrome, 1))
		return m, nil

	case search.QueryMsg:
		seq := m.store.NextSeq()
		m.inFlight++
		m.log.Debug("fetch todos", "query", msg.Term, "seq", seq)
		return m, fetchCmd(m.ctx, m.api, seq, msg.Term)

	case fetchedMsg:
		m.inFlight--
		m.settled = true
		if msg.err != nil {
			m.log.Error("fetch todos", "query", msg.query, "err", msg.err)
			return m, nil
		}
		if !m.store.Replace(msg.seq, msg.todos) {
			m.log.Debug("stale fetch dropped", "query", msg.query, "seq", msg.seq)
			return m, nil
		}
		m.syncList()
		return m, nil

	case addedMsg:
		if msg.err != nil {
			m.log.Error("add todo", "err", msg.err)
			return m, nil
		}
		m.store.Append(msg.todo)
		m.add.SetValue("")
		m.syncList()
		return m, nil

	case removedMsg:
		if msg.err != nil {
			m.log.Error("delete todo", "id", msg.id, "err", msg.err)
			return m, nil
		}
		m.store.Remove(msg.id)
		m.syncList()
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.log.Error("toggle todo", "err", msg.err)
			return m, nil
		}
		if !m.store.Update(msg.todo) {
			m.log.Debug("toggled todo no longer listed", "id", msg.todo.ID)
			return m, nil
		}
		m.syncList()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Timers and cursor blinks go to every component; each ignores what
	// is not addressed to it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.add, cmd = m.add.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.focus {
	case focusSearch:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Submit):
			return m.setFocus(focusList)
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(focusAdd)
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case focusAdd:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.setFocus(focusList)
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(focusList)
		case key.Matches(msg, m.keys.Submit):
			return m.submitAdd()
		}
		var cmd tea.Cmd
		m.add, cmd = m.add.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search), key.Matches(msg, m.keys.Next):
		return m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.Add):
		return m.setFocus(focusAdd)
	case key.Matches(msg, m.keys.Toggle):
		if td, ok := m.selected(); ok {
			return m, toggleCmd(m.ctx, m.api, td)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if td, ok := m.selected(); ok {
			return m, removeCmd(m.ctx, m.api, td.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submitAdd creates a todo from the add field. Blank input is ignored and
// left as typed.
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	name := m.add.Value()
	if strings.TrimSpace(name) == "" {
		return m, nil
	}
	return m, addCmd(m.ctx, m.api, name)
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.search = m.search.Blur()
	m.add.Blur()
	switch f {
	case focusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Focus()
		return m, cmd
	case focusAdd:
		return m, m.add.Focus()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.search = m.search.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// syncList rebuilds the list items from the store, keeping the cursor
// in range.
func (m *Model) syncList() {
	idx := m.list.Index()
	m.list.SetItems(toListItems(m.store.Items()))
	if n := m.store.Len(); n > 0 && idx >= n {
		m.list.Select(n - 1)
	}

	t := ui.Current()
	done, pending := m.store.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymOK), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Total"), m.store.Len(),
	)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := ui.Current()

	var b strings.Builder
	b.WriteString(m.search.View())
	if m.inFlight > 0 {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(m.add.View())
	b.WriteString("\n\n")

	switch {
	case m.store.Len() > 0:
		b.WriteString(m.list.View())
	case !m.settled:
		b.WriteString(t.Muted.Render("Loading..."))
	case m.search.Term() == "":
		b.WriteString(t.Title.Render("No Records"))
	default:
		b.WriteString(t.Muted.Render("No matches"))
	}
	return ui.Panel([]string{b.String()})
}
