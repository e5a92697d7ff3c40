package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Green accent palette, matching the default 🟩 foreground.
var (
	ColorAccent = lipgloss.Color("#22c55e") // Primary brand color
	ColorWhite  = lipgloss.Color("#fafaf9")
	ColorMuted  = lipgloss.Color("#78716c")
	ColorYellow = lipgloss.Color("#eab308")
	ColorRed    = lipgloss.Color("#f43f5e")
	ColorGray   = lipgloss.Color("#a8a29e")
)

// accentStyles returns charmbracelet/log styles with the green accent.
func accentStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(ColorAccent).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(ColorYellow).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(ColorRed).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(ColorMuted)

	styles.Timestamp = lipgloss.NewStyle().
		Foreground(ColorMuted)

	styles.Key = lipgloss.NewStyle().
		Foreground(ColorAccent)

	styles.Value = lipgloss.NewStyle().
		Foreground(ColorGray)

	return styles
}
