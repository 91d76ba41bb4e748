// Package store holds the ordered todo list shown to the user.
package store

import (
	"slices"

	"github.com/idilsaglam/todolist/internal/model"
)

// TodoStore is the in-memory list. It is owned by a single goroutine
// (the TUI update loop) and does no locking.
type TodoStore struct {
	items []model.Todo

	// issued is the last sequence number handed out by NextSeq,
	// applied the newest one whose response replaced the list.
	issued  uint64
	applied uint64
}

// New returns an empty store.
func New() *TodoStore {
	return &TodoStore{items: []model.Todo{}}
}

// Items returns a copy of the list in display order.
func (s *TodoStore) Items() []model.Todo {
	return slices.Clone(s.items)
}

// Len returns the number of todos.
func (s *TodoStore) Len() int { return len(s.items) }

// NextSeq reserves a sequence number for a fetch about to start.
func (s *TodoStore) NextSeq() uint64 {
	s.issued++
	return s.issued
}

// Replace swaps in the result of the fetch tagged seq. A response older
// than one already applied is dropped and Replace returns false.
func (s *TodoStore) Replace(seq uint64, items []model.Todo) bool {
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.items = slices.Clone(items)
	if s.items == nil {
		s.items = []model.Todo{}
	}
	return true
}

// Append adds a freshly created todo at the end.
func (s *TodoStore) Append(t model.Todo) {
	s.items = append(s.items, t)
}

// Remove drops every todo with the given id and reports whether any matched.
func (s *TodoStore) Remove(id model.ID) bool {
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(t model.Todo) bool { return t.ID.Equal(id) })
	return len(s.items) != n
}

// Update replaces the first todo sharing t's id, keeping its position.
func (s *TodoStore) Update(t model.Todo) bool {
	i := s.Index(t.ID)
	if i < 0 {
		return false
	}
	s.items[i] = t
	return true
}

// Index returns the position of id, or -1.
func (s *TodoStore) Index(id model.ID) int {
	return slices.IndexFunc(s.items, func(t model.Todo) bool { return t.ID.Equal(id) })
}

// Stats counts completed and open todos.
func (s *TodoStore) Stats() (done, pending int) {
	for _, t := range s.items {
		if t.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return
}
