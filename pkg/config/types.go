package config

import (
	"time"

	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/marquee"
	"github.com/levyxx/emjtxt/pkg/textwidth"
)

// Config is the emjtxt configuration file. Command-line flags override it.
type Config struct {
	Font         string   `yaml:"font"`
	FontSize     int      `yaml:"font_size,omitempty"` // pixel height for scalable fonts
	Emoji        []string `yaml:"emoji"`               // aliases or literals
	Background   string   `yaml:"background,omitempty"`
	Mode         string   `yaml:"mode"` // solid, cycle, theme
	Theme        string   `yaml:"theme,omitempty"`
	Seed         uint32   `yaml:"seed,omitempty"`
	Speed        int      `yaml:"speed"`           // milliseconds per frame
	Width        int      `yaml:"width,omitempty"` // 0 detects the terminal width
	WidthMeasure string   `yaml:"width_measure,omitempty"`
	Export       Export   `yaml:"export,omitempty"`
}

// Export selects where a rendered banner goes besides stdout.
type Export struct {
	File      string `yaml:"file,omitempty"`
	Slack     bool   `yaml:"slack,omitempty"`
	Clipboard bool   `yaml:"clipboard,omitempty"`
}

// Defaults.
const (
	DefaultEmoji = "🟩"
	DefaultMode  = "solid"
	DefaultSpeed = 100
)

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero values.
func (c *Config) SetDefaults() {
	if c.Font == "" {
		c.Font = bitmap.DefaultFont
	}
	if c.FontSize == 0 {
		c.FontSize = bitmap.DefaultSize
	}
	if len(c.Emoji) == 0 {
		c.Emoji = []string{DefaultEmoji}
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	if c.WidthMeasure == "" {
		c.WidthMeasure = string(textwidth.MeasureHeuristic)
	}
}

// FontSpec returns the configured font selection.
func (c *Config) FontSpec() bitmap.Spec {
	return bitmap.Spec{Name: c.Font, Size: c.FontSize}
}

// Marquee returns the animation settings.
func (c *Config) Marquee() marquee.Config {
	return marquee.Config{
		Speed: time.Duration(c.Speed) * time.Millisecond,
		Width: c.Width,
	}
}

// WidthEngine returns the column measure.
func (c *Config) WidthEngine() textwidth.Engine {
	return textwidth.New(textwidth.ParseMeasure(c.WidthMeasure))
}
