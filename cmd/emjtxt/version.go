package main

import (
	"github.com/levyxx/emjtxt/pkg/bitmap"
	"github.com/levyxx/emjtxt/pkg/output"
	"github.com/levyxx/emjtxt/pkg/render"

	"github.com/spf13/cobra"
)

// Set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printer := output.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
			printer.Version(versionBanner(), version, commit, date)
		},
	}
}

// versionBanner renders the program name in the block font. Rendering
// failures only drop the banner.
func versionBanner() string {
	cfg, err := render.NewConfig([]string{"🟩"}, "", render.ModeSolid, "", 0)
	if err != nil {
		return ""
	}
	res, err := render.Text("emjtxt", bitmap.Spec{Name: bitmap.DefaultFont}, cfg)
	if err != nil {
		return ""
	}
	return res.Text
}
