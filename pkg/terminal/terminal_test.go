package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMoves(t *testing.T) {
	assert.Equal(t, "\x1b[3A", CursorUp(3))
	assert.Equal(t, "", CursorUp(0))
	assert.Equal(t, "\x1b[2B", CursorDown(2))
	assert.Equal(t, "", CursorDown(-1))
}

func TestWidth_FromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "123")
	w, ok := Width(&bytes.Buffer{})
	assert.True(t, ok)
	assert.Equal(t, 123, w)
}

func TestWidth_Fallback(t *testing.T) {
	t.Setenv("COLUMNS", "not-a-number")
	w, ok := Width(&bytes.Buffer{})
	assert.False(t, ok)
	assert.Equal(t, DefaultWidth, w)
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
