// Package textwidth measures, pads and slices strings in terminal columns.
//
// Widths are estimated, not exact. The default measure counts every code
// point at or above WideThreshold as two columns and everything else as one,
// summed per extended grapheme cluster. That is close enough for single
// pictographic emoji but over-counts ZWJ sequences, skin-tone modifiers and
// flags, and under-counts wide symbols below the threshold (CJK, ⭐).
package textwidth

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WideThreshold is the first code point counted as two columns.
const WideThreshold = 0x1F000

// ErrNegativeWidth is returned when a start, length or target is negative.
var ErrNegativeWidth = errors.New("negative width argument")

// Measure names a grapheme width estimator.
type Measure string

const (
	// MeasureHeuristic is the code point threshold rule.
	MeasureHeuristic Measure = "heuristic"
	// MeasureUnicode uses East Asian Width tables via go-runewidth.
	MeasureUnicode Measure = "unicode"
)

// ParseMeasure converts a string to a Measure, defaulting to heuristic.
func ParseMeasure(s string) Measure {
	switch strings.ToLower(s) {
	case "unicode", "eaw":
		return MeasureUnicode
	default:
		return MeasureHeuristic
	}
}

// Engine performs column arithmetic with a fixed width measure.
// The zero value uses the heuristic measure.
type Engine struct {
	measure Measure
}

// New returns an Engine using the given measure.
func New(m Measure) Engine {
	return Engine{measure: m}
}

// Measure reports the engine's width measure.
func (e Engine) Measure() Measure {
	if e.measure == "" {
		return MeasureHeuristic
	}
	return e.measure
}

// GraphemeWidth returns the column width of a single grapheme cluster.
func (e Engine) GraphemeWidth(g string) int {
	if e.Measure() == MeasureUnicode {
		w := runewidth.StringWidth(g)
		if w < 1 && g != "" {
			w = 1
		}
		return w
	}
	w := 0
	for _, r := range g {
		if r >= WideThreshold {
			w += 2
		} else {
			w++
		}
	}
	return w
}

// VisualWidth returns the estimated number of terminal columns s occupies.
func (e Engine) VisualWidth(s string) int {
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w += e.GraphemeWidth(gr.Str())
	}
	return w
}

// Pad appends pad until s is target columns wide. It never truncates.
// An empty pad means a single space.
func (e Engine) Pad(s string, target int, pad string) string {
	if pad == "" {
		pad = " "
	}
	w := e.VisualWidth(s)
	if w >= target {
		return s
	}
	return s + strings.Repeat(pad, target-w)
}

// Substring returns the graphemes of s covering length columns from column
// start. Graphemes ending at or before start are skipped; collection stops
// once the output is at least length columns wide or s is exhausted.
func (e Engine) Substring(s string, start, length int) (string, error) {
	if start < 0 || length < 0 {
		return "", ErrNegativeWidth
	}
	if length == 0 {
		return "", nil
	}

	var b strings.Builder
	pos, out := 0, 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		g := gr.Str()
		w := e.GraphemeWidth(g)
		pos += w
		if pos <= start {
			continue
		}
		b.WriteString(g)
		out += w
		if out >= length {
			break
		}
	}
	return b.String(), nil
}

// Clip returns the longest grapheme prefix of s that fits in width columns.
func (e Engine) Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := e.GraphemeWidth(gr.Str())
		if used+w > width {
			start, _ := gr.Positions()
			return s[:start]
		}
		used += w
	}
	return s
}

// Graphemes returns the number of extended grapheme clusters in s.
func Graphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

var heuristic Engine

// VisualWidth returns the heuristic column width of s.
func VisualWidth(s string) int {
	return heuristic.VisualWidth(s)
}

// PadToVisualWidth pads s with pad up to target heuristic columns.
func PadToVisualWidth(s string, target int, pad string) string {
	return heuristic.Pad(s, target, pad)
}

// VisibleSubstring slices s by heuristic columns. Negative arguments yield "".
func VisibleSubstring(s string, start, length int) string {
	out, err := heuristic.Substring(s, start, length)
	if err != nil {
		return ""
	}
	return out
}
