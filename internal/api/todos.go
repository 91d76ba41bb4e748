package api

import (
	"context"
	"net/url"

	"github.com/idilsaglam/todolist/internal/model"
)

const todosPath = "/todos"

// ListTodos returns the todos matching query. An empty query returns
// whatever the server lists by default, usually everything.
func (c *Client) ListTodos(ctx context.Context, query string) ([]model.Todo, error) {
	params := url.Values{}
	params.Set("q", query)
	var out []model.Todo
	if err := c.Get(ctx, todosPath, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Todo{}
	}
	return out, nil
}

// CreateTodo creates an open todo and returns the server's record.
func (c *Client) CreateTodo(ctx context.Context, taskName string) (model.Todo, error) {
	var out model.Todo
	err := c.Post(ctx, todosPath, model.NewTodo{TaskName: taskName}, &out)
	return out, err
}

// UpdateTodo replaces the todo with t's id and returns the stored version.
func (c *Client) UpdateTodo(ctx context.Context, t model.Todo) (model.Todo, error) {
	var out model.Todo
	err := c.Put(ctx, todoPath(t.ID), t, &out)
	return out, err
}

// DeleteTodo removes the todo with the given id.
func (c *Client) DeleteTodo(ctx context.Context, id model.ID) error {
	return c.Delete(ctx, todoPath(id))
}

func todoPath(id model.ID) string {
	return todosPath + "/" + url.PathEscape(id.String())
}
