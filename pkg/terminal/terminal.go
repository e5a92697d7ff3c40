// Package terminal holds the escape sequences and size detection used to
// draw in place on a VT100-compatible terminal.
package terminal

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when no terminal width can be detected.
const DefaultWidth = 80

// Escape sequences.
const (
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"
	ClearLine  = "\x1b[2K"
)

// CursorUp moves the cursor up n rows. n <= 0 is a no-op.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "A"
}

// CursorDown moves the cursor down n rows. n <= 0 is a no-op.
func CursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "B"
}

// IsTerminal reports whether w is a terminal (including Cygwin ptys).
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Width returns the column count of w if it is a terminal, then $COLUMNS,
// then DefaultWidth. ok is false when the fallback was used.
func Width(w io.Writer) (width int, ok bool) {
	if f, isFile := w.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols, true
		}
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n, true
		}
	}
	return DefaultWidth, false
}
