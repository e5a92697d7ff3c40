package main

import (
	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/output"
	"github.com/levyxx/emjtxt/pkg/theme"

	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printer := output.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
			printer.Themes(themeSummaries())
		},
	}
}

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List available fonts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printer := output.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
			printer.Fonts(fontSummaries())
		},
	}
}

func themeSummaries() []output.ThemeSummary {
	var summaries []output.ThemeSummary
	for _, name := range theme.Names() {
		th, _ := theme.Lookup(name, 0)
		summaries = append(summaries, output.ThemeSummary{
			Name:       th.Name,
			Pattern:    th.Pattern.String(),
			Levels:     th.Levels,
			Background: th.Background,
		})
	}
	return summaries
}

func fontSummaries() []output.FontSummary {
	var summaries []output.FontSummary
	for _, f := range bitmap.Fonts() {
		summaries = append(summaries, output.FontSummary{
			Name:        f.Name,
			Description: f.Description,
			Scalable:    f.Scalable,
		})
	}
	return summaries
}
