package bitmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned for empty text or degenerate grids.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("ragged pixel grid")
)

// PixelGrid is a rectangular bitmap, row-major. true marks ink.
type PixelGrid [][]bool

// Height returns the number of rows.
func (g PixelGrid) Height() int {
	return len(g)
}

// Width returns the number of columns, or 0 for an empty grid.
func (g PixelGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no rows or zero-width rows.
func (g PixelGrid) Empty() bool {
	return g.Height() == 0 || g.Width() == 0
}

// Ink reports whether the cell at (r, c) is set. Out of range cells are blank.
func (g PixelGrid) Ink(r, c int) bool {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return false
	}
	return g[r][c]
}

// Validate checks that every row has the same length.
func (g PixelGrid) Validate() error {
	w := g.Width()
	for i, row := range g {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, i, len(row), w)
		}
	}
	return nil
}

// Trim removes blank rows from the top and bottom and blank columns from the
// left and right edges. A grid with no ink trims to itself.
func (g PixelGrid) Trim() PixelGrid {
	top, bottom := -1, -1
	left, right := g.Width(), -1
	for r, row := range g {
		for c, ink := range row {
			if !ink {
				continue
			}
			if top < 0 {
				top = r
			}
			bottom = r
			left = min(left, c)
			right = max(right, c)
		}
	}
	if top < 0 {
		return g
	}

	out := make(PixelGrid, 0, bottom-top+1)
	for r := top; r <= bottom; r++ {
		out = append(out, append([]bool(nil), g[r][left:right+1]...))
	}
	return out
}

// String draws the grid with '#' for ink and '.' for blank. Used in tests and
// debug logging.
func (g PixelGrid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, ink := range row {
			if ink {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// hconcat joins grids of equal height left to right with gap blank columns
// between them.
func hconcat(parts []PixelGrid, height, gap int) PixelGrid {
	out := make(PixelGrid, height)
	for r := 0; r < height; r++ {
		for i, p := range parts {
			if i > 0 {
				out[r] = append(out[r], make([]bool, gap)...)
			}
			out[r] = append(out[r], p[r]...)
		}
	}
	return out
}
