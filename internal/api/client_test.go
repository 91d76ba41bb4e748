package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

// recorded captures what the fake server received.
type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func newTestServer(t *testing.T, status int, response string) (*Client, *[]recorded) {
	t.Helper()
	var reqs []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(b),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "ACE")
	require.NoError(t, err)
	return c, &reqs
}

func TestListTodos(t *testing.T) {
	c, reqs := newTestServer(t, http.StatusOK,
		`[{"id":1,"taskName":"Buy milk","isCompleted":false},{"id":"b","taskName":"Walk dog","isCompleted":true}]`)

	todos, err := c.ListTodos(context.Background(), "milk")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "1", todos[0].ID.String())
	assert.Equal(t, "Walk dog", todos[1].TaskName)
	assert.True(t, todos[1].IsCompleted)

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/todos", got.path)
	assert.Equal(t, "q=milk", got.query)
	assert.Equal(t, "Bearer ACE", got.auth)
}

func TestListTodosEmptyQuery(t *testing.T) {
	c, reqs := newTestServer(t, http.StatusOK, `null`)

	todos, err := c.ListTodos(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
	assert.Equal(t, "q=", (*reqs)[0].query)
}

func TestCreateTodo(t *testing.T) {
	c, reqs := newTestServer(t, http.StatusCreated, `{"id":7,"taskName":"Read","isCompleted":false}`)

	td, err := c.CreateTodo(context.Background(), "Read")
	require.NoError(t, err)
	assert.Equal(t, "7", td.ID.String())

	got := (*reqs)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/todos", got.path)
	assert.JSONEq(t, `{"taskName":"Read","isCompleted":false}`, got.body)
	assert.Equal(t, "Bearer ACE", got.auth)
}

func TestUpdateTodoEchoesIDShape(t *testing.T) {
	c, reqs := newTestServer(t, http.StatusOK, `{"id":7,"taskName":"Read","isCompleted":true}`)

	var orig model.Todo
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"taskName":"Read","isCompleted":false}`), &orig))

	td, err := c.UpdateTodo(context.Background(), orig.Toggled())
	require.NoError(t, err)
	assert.True(t, td.IsCompleted)

	got := (*reqs)[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/todos/7", got.path)
	assert.JSONEq(t, `{"id":7,"taskName":"Read","isCompleted":true}`, got.body)
}

func TestDeleteTodo(t *testing.T) {
	c, reqs := newTestServer(t, http.StatusNoContent, ``)

	require.NoError(t, c.DeleteTodo(context.Background(), model.ParseID("abc")))
	got := (*reqs)[0]
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/todos/abc", got.path)
	assert.Equal(t, "Bearer ACE", got.auth)
}

func TestNon2xxIsRemoteError(t *testing.T) {
	c, _ := newTestServer(t, http.StatusInternalServerError, `boom`)

	_, err := c.ListTodos(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", se.Body)
	assert.Contains(t, se.Error(), "GET /todos: status 500")
}

func TestTransportFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, "ACE")
	require.NoError(t, err)

	err = c.DeleteTodo(context.Background(), model.ParseID("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestBadJSONIsRemoteError(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{not json`)

	_, err := c.CreateTodo(context.Background(), "x")
	assert.ErrorIs(t, err, ErrRemote)
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := New("localhost", "t")
	assert.Error(t, err)

	c, err := New("", "t")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c, err = New("http://example.test/api/", "t")
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api", c.BaseURL())
}
