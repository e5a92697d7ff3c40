package reload

import (
	"slices"

	"github.com/levyxx/emjtxt/pkg/config"
)

// ConfigDiff lists the config keys that differ between two loads.
type ConfigDiff struct {
	Changed []string
}

// IsEmpty returns true if nothing changed.
func (d ConfigDiff) IsEmpty() bool {
	return len(d.Changed) == 0
}

// Has reports whether key changed.
func (d ConfigDiff) Has(key string) bool {
	return slices.Contains(d.Changed, key)
}

// NeedsRender reports whether the banner text itself must be rebuilt.
// Speed, width and export changes only affect how it is delivered.
func (d ConfigDiff) NeedsRender() bool {
	for _, k := range d.Changed {
		switch k {
		case "speed", "width", "export":
		default:
			return true
		}
	}
	return false
}

// ComputeDiff compares two configurations by YAML key.
func ComputeDiff(old, new *config.Config) ConfigDiff {
	var d ConfigDiff
	if old == nil || new == nil {
		if old != new {
			d.Changed = append(d.Changed, "config")
		}
		return d
	}

	check := func(key string, changed bool) {
		if changed {
			d.Changed = append(d.Changed, key)
		}
	}
	check("font", old.Font != new.Font)
	check("font_size", old.FontSize != new.FontSize)
	check("emoji", !slices.Equal(old.Emoji, new.Emoji))
	check("background", old.Background != new.Background)
	check("mode", old.Mode != new.Mode)
	check("theme", old.Theme != new.Theme)
	check("seed", old.Seed != new.Seed)
	check("speed", old.Speed != new.Speed)
	check("width", old.Width != new.Width)
	check("width_measure", old.WidthMeasure != new.WidthMeasure)
	check("export", old.Export != new.Export)
	return d
}
