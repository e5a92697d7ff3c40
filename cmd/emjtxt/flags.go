package main

import (
	"slices"

	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/config"
	"github.com/levyxx/emjtxt/pkg/emoji"

	"github.com/spf13/cobra"
)

// bannerOptions are the render flags. A flag overrides the config file only
// when it was set on the command line.
type bannerOptions struct {
	font         string
	fontSize     int
	emoji        []string
	background   string
	mode         string
	theme        string
	seed         uint32
	widthMeasure string

	output    string
	slack     bool
	clipboard bool
}

func (o *bannerOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.font, "font", "f", bitmap.DefaultFont, "Font: block, basic or mono")
	f.IntVar(&o.fontSize, "font-size", bitmap.DefaultSize, "Pixel height for scalable fonts")
	f.StringArrayVarP(&o.emoji, "emoji", "e", nil, "Foreground emoji, alias (:fire:) or literal; repeatable or comma-separated")
	f.StringVarP(&o.background, "bg", "b", "", "Background emoji (default: spaces)")
	f.StringVarP(&o.mode, "mode", "m", config.DefaultMode, "Glyph mode: solid, cycle or theme")
	f.StringVarP(&o.theme, "theme", "t", "", "Theme for --mode theme")
	f.Uint32Var(&o.seed, "seed", 0, "Seed for theme glyph variation")
	f.StringVar(&o.widthMeasure, "width-measure", "heuristic", "Column measure: heuristic or unicode")

	f.StringVarP(&o.output, "output", "o", "", "Also write the banner to this file")
	f.BoolVar(&o.slack, "slack", false, "Print a Slack message payload instead of the banner")
	f.BoolVar(&o.clipboard, "clipboard", false, "Copy the banner to the clipboard")
}

// apply copies changed flags onto cfg and validates the result.
func (o *bannerOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("font") {
		cfg.Font = o.font
	}
	if f.Changed("font-size") {
		cfg.FontSize = o.fontSize
	}
	if f.Changed("emoji") {
		var list []string
		for _, v := range o.emoji {
			list = append(list, emoji.Split(v)...)
		}
		cfg.Emoji = list
	}
	if f.Changed("bg") {
		cfg.Background = o.background
	}
	if f.Changed("mode") {
		cfg.Mode = o.mode
	}
	if f.Changed("theme") {
		cfg.Theme = o.theme
		// Naming a theme implies theme mode unless a mode was given too.
		if !f.Changed("mode") {
			cfg.Mode = "theme"
		}
	}
	if f.Changed("seed") {
		cfg.Seed = o.seed
	}
	if f.Changed("width-measure") {
		cfg.WidthMeasure = o.widthMeasure
	}
	if f.Changed("output") {
		cfg.Export.File = o.output
	}
	if f.Changed("slack") {
		cfg.Export.Slack = o.slack
	}
	if f.Changed("clipboard") {
		cfg.Export.Clipboard = o.clipboard
	}
	return config.Validate(cfg)
}

// cloneConfig copies cfg so flag overrides never touch a shared value.
func cloneConfig(cfg *config.Config) *config.Config {
	c := *cfg
	c.Emoji = slices.Clone(cfg.Emoji)
	return &c
}
