package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/levyxx/emjtxt/pkg/config"
	"github.com/levyxx/emjtxt/pkg/emoji"
	"github.com/levyxx/emjtxt/pkg/export"
	"github.com/levyxx/emjtxt/pkg/output"
	"github.com/levyxx/emjtxt/pkg/render"

	"github.com/spf13/cobra"
)

var errNoText = errors.New("no text to render")

func newRenderCmd(a *app) *cobra.Command {
	banner := &bannerOptions{}
	cmd := &cobra.Command{
		Use:   "render <text...>",
		Short: "Print text as an emoji banner",
		Long: `Rasterises text with the selected font and prints one emoji per pixel.

Arguments are joined with spaces. Flags override the config file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, banner, args)
		},
	}
	banner.addFlags(cmd)
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, banner *bannerOptions, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	fileCfg, _, err := a.loadConfig()
	if err != nil {
		return err
	}
	cfg := cloneConfig(fileCfg)
	if err := banner.apply(cmd, cfg); err != nil {
		return err
	}

	printer := a.printer(cmd)
	res, err := buildBanner(printer, bannerText(args), cfg)
	if err != nil {
		return err
	}
	return a.deliver(printer, cfg, res)
}

// bannerText joins the arguments into one line of text.
func bannerText(args []string) string {
	return strings.Join(args, " ")
}

// buildBanner resolves the configured emoji and renders text.
func buildBanner(printer *output.Printer, text string, cfg *config.Config) (render.Result, error) {
	if strings.TrimSpace(text) == "" {
		return render.Result{}, errNoText
	}

	fg, err := emoji.ResolveList(cfg.Emoji)
	if err != nil {
		return render.Result{}, err
	}
	var bg string
	if cfg.Background != "" {
		if bg, err = emoji.Resolve(cfg.Background); err != nil {
			return render.Result{}, fmt.Errorf("background: %w", err)
		}
	}
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return render.Result{}, err
	}

	rc, err := render.NewConfig(fg, bg, mode, cfg.Theme, cfg.Seed)
	if err != nil {
		return render.Result{}, err
	}
	if rc.ThemeFallback {
		printer.Warn("Unknown theme, using solid mode", "theme", cfg.Theme)
	}
	rc = rc.WithWidth(cfg.WidthEngine())

	printer.Debug("Rendering banner", "font", cfg.Font, "mode", rc.Mode, "glyphs", len(fg))
	res, err := render.Text(text, cfg.FontSpec(), rc)
	if err != nil {
		return render.Result{}, fmt.Errorf("failed to render banner: %w", err)
	}
	return res, nil
}

// deliver prints the banner, or its Slack payload, then runs the configured
// file and clipboard exports.
func (a *app) deliver(printer *output.Printer, cfg *config.Config, res render.Result) error {
	if cfg.Export.Slack {
		payload, err := export.SlackPayload(res.Text)
		if err != nil {
			return err
		}
		printer.Println(string(payload))
	} else {
		printer.Banner(res.Text)
	}

	if cfg.Export.File != "" {
		path, err := export.File(cfg.Export.File, res.Text)
		if err != nil {
			return err
		}
		printer.Info("Banner written", "path", path)
	}

	if cfg.Export.Clipboard {
		if err := export.CopyToClipboard(a.clipboard, res.Text); err != nil {
			return err
		}
		printer.Info("Banner copied to clipboard")
	}
	return nil
}
