// Package render maps pixel grids to multi-line emoji banners.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/textwidth"
	"github.com/levyxx/emjtxt/pkg/theme"
)

// ErrInvalidInput is returned for configurations that cannot render.
var ErrInvalidInput = errors.New("invalid input")

// Mode selects how ink cells pick their glyph.
type Mode string

const (
	// ModeSolid uses the first foreground glyph everywhere.
	ModeSolid Mode = "solid"
	// ModeCycle steps through the foreground glyphs by cell position.
	ModeCycle Mode = "cycle"
	// ModeTheme takes glyphs and background from a theme.
	ModeTheme Mode = "theme"
)

// ParseMode converts a string to a Mode. Unknown values are an error.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeSolid, ModeCycle, ModeTheme:
		return m, nil
	case "":
		return ModeSolid, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
}

// Config holds the glyph choices for a render. Build it with NewConfig.
type Config struct {
	Foreground []string
	Background string
	Mode       Mode
	Theme      theme.Theme

	// ThemeFallback is set when theme mode was requested with an unknown
	// theme and the config fell back to solid.
	ThemeFallback bool

	Width textwidth.Engine
}

// NewConfig validates and copies its inputs. An unknown theme in theme mode
// degrades to solid mode rather than failing.
func NewConfig(foreground []string, background string, mode Mode, themeName string, seed uint32) (Config, error) {
	if len(foreground) == 0 {
		return Config{}, fmt.Errorf("%w: at least one foreground emoji is required", ErrInvalidInput)
	}
	for i, g := range foreground {
		if g == "" {
			return Config{}, fmt.Errorf("%w: foreground emoji %d is empty", ErrInvalidInput, i)
		}
	}
	if mode == "" {
		mode = ModeSolid
	}

	cfg := Config{
		Foreground: append([]string(nil), foreground...),
		Background: background,
		Mode:       mode,
	}
	if mode == ModeTheme {
		th, ok := theme.Lookup(themeName, seed)
		if ok {
			cfg.Theme = th
		} else {
			cfg.Mode = ModeSolid
			cfg.ThemeFallback = true
		}
	}
	return cfg, nil
}

// WithWidth returns a copy of cfg measuring columns with e.
func (c Config) WithWidth(e textwidth.Engine) Config {
	c.Width = e
	return c
}

// Result is a rendered banner: lines joined by "\n", no trailing newline,
// every line padded to the same visual width.
type Result struct {
	Text string
}

// Lines splits the banner into rows. An empty banner has no lines.
func (r Result) Lines() []string {
	if r.Text == "" {
		return nil
	}
	return strings.Split(r.Text, "\n")
}

// Empty reports whether the banner has no content.
func (r Result) Empty() bool {
	return r.Text == ""
}

// Render emits one glyph per grid cell. An empty grid yields an empty
// Result; a ragged grid is an error.
func Render(grid bitmap.PixelGrid, cfg Config) (Result, error) {
	if grid.Empty() {
		return Result{}, nil
	}
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}
	if len(cfg.Foreground) == 0 {
		return Result{}, fmt.Errorf("%w: at least one foreground emoji is required", ErrInvalidInput)
	}

	mode := cfg.Mode
	if mode == ModeTheme && len(cfg.Theme.Levels) == 0 {
		mode = ModeSolid
	}

	blank := cfg.Background
	if mode == ModeTheme {
		blank = cfg.Theme.Background
	}
	if blank == "" {
		blank = strings.Repeat(" ", max(1, cfg.Width.VisualWidth(cfg.Foreground[0])))
	}

	width := grid.Width()
	lines := make([]string, grid.Height())
	maxWidth := 0
	for r := range grid {
		var b strings.Builder
		for c := 0; c < width; c++ {
			if !grid[r][c] {
				b.WriteString(blank)
				continue
			}
			switch mode {
			case ModeCycle:
				b.WriteString(cfg.Foreground[(r*width+c)%len(cfg.Foreground)])
			case ModeTheme:
				b.WriteString(cfg.Theme.Glyph(r, c))
			default:
				b.WriteString(cfg.Foreground[0])
			}
		}
		lines[r] = b.String()
		maxWidth = max(maxWidth, cfg.Width.VisualWidth(lines[r]))
	}

	for i, line := range lines {
		lines[i] = cfg.Width.Pad(line, maxWidth, " ")
	}
	return Result{Text: strings.Join(lines, "\n")}, nil
}

// Text rasterises text with font and renders it with cfg.
func Text(text string, font bitmap.Spec, cfg Config) (Result, error) {
	grid, err := bitmap.Render(text, font)
	if err != nil {
		return Result{}, err
	}
	return Render(grid, cfg)
}
