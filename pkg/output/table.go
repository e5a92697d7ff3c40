package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ThemeSummary contains data for the themes table.
type ThemeSummary struct {
	Name       string
	Pattern    string // noise, bands, diagonal
	Levels     []string
	Background string
}

// FontSummary contains data for the fonts table.
type FontSummary struct {
	Name        string
	Description string
	Scalable    bool
}

// Themes prints the available themes with a glyph preview.
func (p *Printer) Themes(themes []ThemeSummary) {
	if len(themes) == 0 {
		return
	}

	p.Section("THEMES")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"Name", "Pattern", "Glyphs", "Background"})
	for _, th := range themes {
		t.AppendRow(table.Row{th.Name, th.Pattern, strings.Join(th.Levels, ""), th.Background})
	}

	t.Render()
	p.Println()
}

// Fonts prints the available fonts.
func (p *Printer) Fonts(fonts []FontSummary) {
	if len(fonts) == 0 {
		return
	}

	p.Section("FONTS")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"Name", "Scalable", "Description"})
	for _, f := range fonts {
		scalable := "no"
		if f.Scalable {
			scalable = "yes"
			if p.isTTY {
				scalable = lipgloss.NewStyle().Foreground(ColorAccent).Render(scalable)
			}
		}
		t.AppendRow(table.Row{f.Name, scalable, f.Description})
	}

	t.Render()
	p.Println()
}

// tableStyle returns the standard accent-themed table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiGreen, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
