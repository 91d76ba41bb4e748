package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDKeepsServerShape(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		var td Todo
		require.NoError(t, json.Unmarshal([]byte(`{"id":42,"taskName":"Buy milk","isCompleted":false}`), &td))
		assert.Equal(t, "42", td.ID.String())

		out, err := json.Marshal(td.Toggled())
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":42,"taskName":"Buy milk","isCompleted":true}`, string(out))
	})

	t.Run("string id", func(t *testing.T) {
		var td Todo
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a1b2","taskName":"Walk dog","isCompleted":true}`), &td))
		assert.Equal(t, "a1b2", td.ID.String())

		out, err := json.Marshal(td)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"a1b2","taskName":"Walk dog","isCompleted":true}`, string(out))
	})

	t.Run("rejects objects", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
	})
}

func TestParseIDMatchesNumericServerID(t *testing.T) {
	var td Todo
	require.NoError(t, json.Unmarshal([]byte(`{"id":3}`), &td))
	assert.True(t, ParseID("3").Equal(td.ID))
	assert.False(t, ParseID("4").Equal(td.ID))
	assert.True(t, ID{}.IsZero())
}

func TestToggledLeavesOriginal(t *testing.T) {
	td := Todo{ID: ParseID("1"), TaskName: "x"}
	flipped := td.Toggled()
	assert.False(t, td.IsCompleted)
	assert.True(t, flipped.IsCompleted)
}
