package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/levyxx/emjtxt/pkg/config"
	"github.com/levyxx/emjtxt/pkg/export"
	"github.com/levyxx/emjtxt/pkg/logging"
	"github.com/levyxx/emjtxt/pkg/output"

	"github.com/spf13/cobra"
)

// app holds the persistent flags and the collaborators shared by every
// subcommand.
type app struct {
	configPath string
	verbose    bool
	logFormat  string

	clipboard export.Clipboard
}

func newRootCmd(a *app) *cobra.Command {
	banner := &bannerOptions{}

	cmd := &cobra.Command{
		Use:   "emjtxt [text...]",
		Short: "Render text as emoji banners",
		Long: `Emjtxt draws text as a grid of emoji, one emoji per font pixel.

Banners can be printed once, scrolled across the terminal as a marquee,
written to a file, copied to the clipboard or wrapped in a Slack payload.
Running emjtxt with text and no subcommand is the same as 'emjtxt render'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, banner, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file (default $"+config.EnvConfig+" or the user config dir)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	banner.addFlags(cmd)

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newAnimateCmd(a))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newFontsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	a := &app{clipboard: export.SystemClipboard{}}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printer returns a Printer bound to the command's writers.
func (a *app) printer(cmd *cobra.Command) *output.Printer {
	p := output.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	p.SetDebug(a.verbose)
	return p
}

// logger returns the slog logger handed to library packages.
func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = cmd.ErrOrStderr()
	cfg.Format = logging.ParseFormat(a.logFormat)
	if a.verbose {
		cfg.Level = slog.LevelDebug
	}
	return logging.NewStructuredLogger(cfg)
}

// loadConfig loads the config file without flag overrides. The returned
// path is empty when no file was found.
func (a *app) loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return nil, path, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}
