package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, true).Debug("shown", "seq", 3)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "seq=3")
	assert.Contains(t, buf.String(), prefix)
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.log")

	logger, closer, err := Open(path, false)
	require.NoError(t, err)
	logger.Error("fetch todos", "err", "boom")
	require.NoError(t, closer.Close())

	logger, closer, err = Open(path, false)
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch todos")
	assert.Contains(t, string(data), "err=boom")
	assert.Contains(t, string(data), "second")
}

func TestOpenRequiresPath(t *testing.T) {
	_, _, err := Open("", false)
	assert.Error(t, err)
}
