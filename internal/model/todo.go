package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Todo is a task record as the server returns it.
type Todo struct {
	ID          ID     `json:"id"`
	TaskName    string `json:"taskName"`
	IsCompleted bool   `json:"isCompleted"`
}

// NewTodo is the body of a create request; the server assigns the id.
type NewTodo struct {
	TaskName    string `json:"taskName"`
	IsCompleted bool   `json:"isCompleted"`
}

// Toggled returns a copy of t with the completion flag flipped.
func (t Todo) Toggled() Todo {
	t.IsCompleted = !t.IsCompleted
	return t
}

// ID identifies a todo. Servers send either a JSON string or a JSON number;
// the original shape is kept so updates echo it back unchanged.
type ID struct {
	raw     string
	numeric bool
}

// ParseID wraps a user-supplied id. Comparison only looks at the text, so
// "3" matches a server id of 3.
func ParseID(s string) ID { return ID{raw: s} }

func (id ID) String() string { return id.raw }

// IsZero reports whether the id was never set.
func (id ID) IsZero() bool { return id.raw == "" }

// Equal compares ids by their textual form.
func (id ID) Equal(other ID) bool { return id.raw == other.raw }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ID{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID{raw: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("todo id: %w", err)
	}
	*id = ID{raw: n.String(), numeric: true}
	return nil
}
