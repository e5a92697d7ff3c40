// Package theme provides emoji palettes whose glyph choice varies by pixel
// position.
package theme

import (
	"sort"
	"strings"
)

// Pattern selects how a theme maps a position to an intensity level.
type Pattern int

const (
	// Noise picks a level from a position hash.
	Noise Pattern = iota
	// Bands steps levels every two rows, jittered by the position hash.
	Bands
	// Diagonal walks levels along row+col.
	Diagonal
)

func (p Pattern) String() string {
	switch p {
	case Noise:
		return "noise"
	case Bands:
		return "bands"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// Theme is an emoji palette. Levels are ordered from low to high intensity.
type Theme struct {
	Name       string
	Levels     []string
	Background string
	Pattern    Pattern
	Seed       uint32
}

// Glyph returns the glyph for the ink cell at (row, col).
func (t Theme) Glyph(row, col int) string {
	return t.Levels[t.Intensity(row, col)]
}

// Intensity maps (row, col) to a level index in [0, len(Levels)).
// The result depends only on the position, the pattern and the seed.
func (t Theme) Intensity(row, col int) int {
	n := uint32(len(t.Levels))
	if n == 0 {
		return 0
	}
	h := Hash(row, col, t.Seed)
	switch t.Pattern {
	case Bands:
		return int((uint32(row/2) + h%2) % n)
	case Diagonal:
		return (row + col) % int(n)
	default:
		return int(h % n)
	}
}

// Hash mixes a position and seed into 32 bits. It is stable across runs and
// platforms so a seed always reproduces the same picture.
func Hash(row, col int, seed uint32) uint32 {
	h := seed ^ 0x9e3779b9
	h ^= uint32(row) * 0x85ebca6b
	h = h<<13 | h>>19
	h ^= uint32(col) * 0xc2b2ae35
	h = h<<17 | h>>15
	h *= 0x27d4eb2d
	// murmur3 finalizer
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

var builtin = map[string]Theme{
	"fire": {
		Name:       "fire",
		Levels:     []string{"🟥", "🟧", "🟨", "🔥"},
		Background: "🖤",
		Pattern:    Bands,
	},
	"ocean": {
		Name:       "ocean",
		Levels:     []string{"🌊", "💧", "🐳"},
		Background: "🟦",
		Pattern:    Noise,
	},
	"forest": {
		Name:       "forest",
		Levels:     []string{"🌲", "🌳", "🌿", "🍀"},
		Background: "🟫",
		Pattern:    Noise,
	},
	"rainbow": {
		Name:       "rainbow",
		Levels:     []string{"🟥", "🟧", "🟨", "🟩", "🟦", "🟪"},
		Background: "🔳",
		Pattern:    Diagonal,
	},
	"night": {
		Name:       "night",
		Levels:     []string{"🌟", "🌙", "💫"},
		Background: "🌑",
		Pattern:    Noise,
	},
}

// Lookup returns the named theme with the given seed.
func Lookup(name string, seed uint32) (Theme, bool) {
	t, ok := builtin[strings.ToLower(name)]
	if !ok {
		return Theme{}, false
	}
	t.Levels = append([]string(nil), t.Levels...)
	t.Seed = seed
	return t, true
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
