package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
)

// Backend is the part of the API client the list screen uses.
type Backend interface {
	ListTodos(ctx context.Context, query string) ([]model.Todo, error)
	CreateTodo(ctx context.Context, taskName string) (model.Todo, error)
	UpdateTodo(ctx context.Context, t model.Todo) (model.Todo, error)
	DeleteTodo(ctx context.Context, id model.ID) error
}

type fetchedMsg struct {
	seq   uint64
	query string
	todos []model.Todo
	err   error
}

type addedMsg struct {
	todo model.Todo
	err  error
}

type removedMsg struct {
	id  model.ID
	err error
}

type toggledMsg struct {
	todo model.Todo
	err  error
}

func fetchCmd(ctx context.Context, api Backend, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		todos, err := api.ListTodos(ctx, query)
		return fetchedMsg{seq: seq, query: query, todos: todos, err: err}
	}
}

func addCmd(ctx context.Context, api Backend, taskName string) tea.Cmd {
	return func() tea.Msg {
		td, err := api.CreateTodo(ctx, taskName)
		return addedMsg{todo: td, err: err}
	}
}

func removeCmd(ctx context.Context, api Backend, id model.ID) tea.Cmd {
	return func() tea.Msg {
		return removedMsg{id: id, err: api.DeleteTodo(ctx, id)}
	}
}

func toggleCmd(ctx context.Context, api Backend, td model.Todo) tea.Cmd {
	return func() tea.Msg {
		updated, err := api.UpdateTodo(ctx, td.Toggled())
		return toggledMsg{todo: updated, err: err}
	}
}
