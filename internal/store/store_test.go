package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func todo(id, name string, done bool) model.Todo {
	return model.Todo{ID: model.ParseID(id), TaskName: name, IsCompleted: done}
}

func seeded(t *testing.T) *TodoStore {
	t.Helper()
	s := New()
	require.True(t, s.Replace(s.NextSeq(), []model.Todo{
		todo("1", "Buy milk", false),
		todo("2", "Walk dog", true),
		todo("3", "Read", false),
	}))
	return s
}

func TestReplace(t *testing.T) {
	t.Run("empty store starts empty, not nil", func(t *testing.T) {
		s := New()
		assert.NotNil(t, s.Items())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("replaces the whole list in server order", func(t *testing.T) {
		s := seeded(t)
		ok := s.Replace(s.NextSeq(), []model.Todo{todo("9", "Only", false)})
		assert.True(t, ok)
		assert.Equal(t, []model.Todo{todo("9", "Only", false)}, s.Items())
	})

	t.Run("nil response yields empty list", func(t *testing.T) {
		s := seeded(t)
		require.True(t, s.Replace(s.NextSeq(), nil))
		assert.NotNil(t, s.Items())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		s := New()
		first := s.NextSeq()
		second := s.NextSeq()

		require.True(t, s.Replace(second, []model.Todo{todo("2", "newer", false)}))
		assert.False(t, s.Replace(first, []model.Todo{todo("1", "older", false)}))
		assert.Equal(t, []model.Todo{todo("2", "newer", false)}, s.Items())
	})

	t.Run("in-order responses both apply", func(t *testing.T) {
		s := New()
		first := s.NextSeq()
		second := s.NextSeq()
		assert.True(t, s.Replace(first, []model.Todo{todo("1", "a", false)}))
		assert.True(t, s.Replace(second, []model.Todo{todo("2", "b", false)}))
		assert.Equal(t, "2", s.Items()[0].ID.String())
	})
}

func TestAppend(t *testing.T) {
	s := seeded(t)
	s.Append(todo("4", "New", false))
	items := s.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "4", items[3].ID.String())
}

func TestRemove(t *testing.T) {
	s := seeded(t)
	assert.True(t, s.Remove(model.ParseID("2")))
	assert.Equal(t, []model.Todo{todo("1", "Buy milk", false), todo("3", "Read", false)}, s.Items())

	assert.False(t, s.Remove(model.ParseID("42")))
	assert.Equal(t, 2, s.Len())
}

func TestUpdateKeepsOrder(t *testing.T) {
	s := seeded(t)
	before := s.Items()

	assert.True(t, s.Update(todo("2", "Walk dog", false)))
	after := s.Items()
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, todo("2", "Walk dog", false), after[1])
	assert.Equal(t, before[2], after[2])

	assert.False(t, s.Update(todo("99", "ghost", true)))
	assert.Equal(t, after, s.Items())
}

func TestItemsIsACopy(t *testing.T) {
	s := seeded(t)
	items := s.Items()
	items[0].TaskName = "mutated"
	assert.Equal(t, "Buy milk", s.Items()[0].TaskName)
}

func TestStats(t *testing.T) {
	done, pending := seeded(t).Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
