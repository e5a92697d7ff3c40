package config

import (
	"fmt"
	"strings"

	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/render"
	"github.com/levyxx/emjtxt/pkg/textwidth"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Font size bounds for scalable fonts.
const (
	MinFontSize = 4
	MaxFontSize = 256
)

// Validate checks the configuration for errors. An unknown theme is not an
// error: rendering falls back to solid mode.
func Validate(c *Config) error {
	var errs ValidationErrors

	if _, err := bitmap.Lookup(c.FontSpec()); err != nil {
		errs = append(errs, ValidationError{"font", fmt.Sprintf("unknown font %q", c.Font)})
	}
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		errs = append(errs, ValidationError{"font_size", fmt.Sprintf("must be between %d and %d", MinFontSize, MaxFontSize)})
	}

	if len(c.Emoji) == 0 {
		errs = append(errs, ValidationError{"emoji", "at least one emoji is required"})
	}
	for i, e := range c.Emoji {
		if strings.TrimSpace(e) == "" {
			errs = append(errs, ValidationError{fmt.Sprintf("emoji[%d]", i), "is empty"})
		}
	}

	if _, err := render.ParseMode(c.Mode); err != nil {
		errs = append(errs, ValidationError{"mode", "must be 'solid', 'cycle', or 'theme'"})
	}

	if c.Speed < 1 {
		errs = append(errs, ValidationError{"speed", "must be at least 1 (milliseconds)"})
	}
	if c.Width < 0 {
		errs = append(errs, ValidationError{"width", "must not be negative"})
	}

	switch strings.ToLower(c.WidthMeasure) {
	case string(textwidth.MeasureHeuristic), string(textwidth.MeasureUnicode), "eaw":
	default:
		errs = append(errs, ValidationError{"width_measure", "must be 'heuristic' or 'unicode'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
