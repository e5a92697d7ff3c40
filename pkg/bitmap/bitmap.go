// Package bitmap converts text into pixel grids using bitmap or outline fonts.
package bitmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownFont is returned when a font name is not registered.
	ErrUnknownFont = errors.New("unknown font")
	// ErrRenderFailure wraps failures while loading or rasterising a font.
	ErrRenderFailure = errors.New("render failure")
)

// DefaultFont is used when no font is configured.
const DefaultFont = "block"

// DefaultSize is the pixel height for scalable fonts.
const DefaultSize = 12

// Font rasterises a line of text into a grid.
type Font interface {
	Name() string
	Rasterize(text string) (PixelGrid, error)
}

// Spec selects a font and, for scalable fonts, its pixel size.
type Spec struct {
	Name string
	Size int
}

// Info describes a registered font for listings.
type Info struct {
	Name        string
	Description string
	Scalable    bool
}

var fonts = map[string]Info{
	"block": {"block", "built-in 5x5 pixel font, A-Z 0-9 and punctuation", false},
	"basic": {"basic", "x/image basicfont 7x13 face", false},
	"mono":  {"mono", "Go Mono TrueType rasterised at --font-size pixels", true},
}

// Fonts returns the registered fonts sorted by name.
func Fonts() []Info {
	out := make([]Info, 0, len(fonts))
	for _, f := range fonts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the font named by spec.
func Lookup(spec Spec) (Font, error) {
	name := strings.ToLower(spec.Name)
	if name == "" {
		name = DefaultFont
	}
	switch name {
	case "block":
		return blockFont{}, nil
	case "basic":
		return faceFont{name: "basic", face: basicFace}, nil
	case "mono":
		size := spec.Size
		if size <= 0 {
			size = DefaultSize
		}
		return faceFont{name: "mono", face: monoFace(size)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, spec.Name)
}

// Render converts text to a grid with the font named by spec. Tabs and
// newlines are treated as spaces.
func Render(text string, spec Spec) (PixelGrid, error) {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	f, err := Lookup(spec)
	if err != nil {
		return nil, err
	}

	grid, err := f.Rasterize(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailure, f.Name(), err)
	}
	if grid.Empty() {
		return nil, fmt.Errorf("%w: %s produced an empty grid", ErrInvalidInput, f.Name())
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailure, f.Name(), err)
	}
	return grid, nil
}

func normalize(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, text)
}
