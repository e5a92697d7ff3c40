package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/levyxx/emjtxt/pkg/config"
	"github.com/levyxx/emjtxt/pkg/logging"
	"github.com/levyxx/emjtxt/pkg/marquee"
	"github.com/levyxx/emjtxt/pkg/output"
	"github.com/levyxx/emjtxt/pkg/reload"
	"github.com/levyxx/emjtxt/pkg/render"
	"github.com/levyxx/emjtxt/pkg/terminal"

	"github.com/spf13/cobra"
)

// animateOptions are the marquee flags.
type animateOptions struct {
	speed int
	width int
	once  bool
	watch bool
}

func (o *animateOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("speed") {
		cfg.Speed = o.speed
	}
	if f.Changed("width") {
		cfg.Width = o.width
	}
	return config.Validate(cfg)
}

func newAnimateCmd(a *app) *cobra.Command {
	banner := &bannerOptions{}
	anim := &animateOptions{}

	cmd := &cobra.Command{
		Use:   "animate <text...>",
		Short: "Scroll an emoji banner across the terminal",
		Long: `Scrolls the banner from the right edge to the left until interrupted.

The cursor is hidden while the marquee runs and restored on exit, including
Ctrl+C. Use --once to stop after one pass.

Use --watch to reload the config file on save and restart the scroll with
the new settings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runAnimate(ctx, cmd, banner, anim, bannerText(args))
		},
	}

	banner.addFlags(cmd)
	cmd.Flags().IntVarP(&anim.speed, "speed", "s", config.DefaultSpeed, "Milliseconds per frame")
	cmd.Flags().IntVarP(&anim.width, "width", "w", 0, "Viewport width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&anim.once, "once", false, "Stop after one full pass")
	cmd.Flags().BoolVar(&anim.watch, "watch", false, "Reload the config file on change")
	return cmd
}

func (a *app) runAnimate(ctx context.Context, cmd *cobra.Command, banner *bannerOptions, anim *animateOptions, text string) error {
	fileCfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}

	printer := a.printer(cmd)
	logger := a.logger(cmd)
	if !printer.IsTTY() {
		printer.Debug("Output is not a terminal, frames are written as raw escape sequences")
	}

	// resolve applies the command line on top of a config file value.
	resolve := func(base *config.Config) (*config.Config, error) {
		cfg := cloneConfig(base)
		if err := banner.apply(cmd, cfg); err != nil {
			return nil, err
		}
		if err := anim.apply(cmd, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if !anim.watch {
		cfg, err := resolve(fileCfg)
		if err != nil {
			return err
		}
		res, err := buildBanner(printer, text, cfg)
		if err != nil {
			return err
		}
		return animateBanner(ctx, printer.Out(), res, cfg, anim.once, logger)
	}

	if path == "" {
		return fmt.Errorf("--watch needs a config file (use --config or $%s)", config.EnvConfig)
	}
	return watchAnimate(ctx, printer, logger, path, fileCfg, resolve, text, anim.once)
}

// animateBanner runs one marquee. A zero configured width uses the terminal
// width of w.
func animateBanner(ctx context.Context, w io.Writer, res render.Result, cfg *config.Config, once bool, logger *slog.Logger) error {
	mc := cfg.Marquee()
	if mc.Width == 0 {
		width, ok := terminal.Width(w)
		if !ok {
			logger.Debug("terminal width unavailable, using default", "width", width)
		}
		mc.Width = width
	}

	animator := marquee.New(w, mc)
	animator.SetLogger(logging.WithComponent(logger, "marquee"))
	animator.SetWidthEngine(cfg.WidthEngine())

	if once {
		return animator.RunOnce(ctx, res)
	}
	return animator.Run(ctx, res)
}

// watchAnimate restarts the marquee whenever the config file at path changes.
// A config that fails to load or render is logged and the previous banner
// keeps scrolling. Changes that only touch speed, width or exports restart
// with the banner already built.
func watchAnimate(
	ctx context.Context,
	printer *output.Printer,
	logger *slog.Logger,
	path string,
	fileCfg *config.Config,
	resolve func(*config.Config) (*config.Config, error),
	text string,
	once bool,
) error {
	handler := reload.NewHandler(path, fileCfg)
	handler.SetLogger(logging.WithComponent(logger, "reload"))

	// changed carries whether the pending change needs a new banner.
	// Only the watcher goroutine sends, so draining then sending never blocks.
	changed := make(chan bool, 1)
	notify := func(rerender bool) {
		select {
		case prev := <-changed:
			rerender = rerender || prev
		default:
		}
		changed <- rerender
	}

	watcher := reload.NewWatcher(path, func() error {
		result := handler.Reload()
		if !result.Success {
			return errors.New(result.Message)
		}
		if len(result.Changed) > 0 {
			notify(result.Render)
		}
		return nil
	})
	watcher.SetLogger(logging.WithComponent(logger, "reload"))

	watchCtx, watchCancel := context.WithCancel(ctx)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if err := watcher.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("config watcher stopped", "error", err)
		}
	}()
	defer func() {
		watchCancel()
		<-watchDone
	}()

	cfg, err := resolve(fileCfg)
	if err != nil {
		return err
	}
	res, err := buildBanner(printer, text, cfg)
	if err != nil {
		return err
	}

	for {
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func(cfg *config.Config, res render.Result) {
			done <- animateBanner(runCtx, printer.Out(), res, cfg, once, logger)
		}(cfg, res)

		select {
		case err := <-done:
			cancel()
			return err

		case rerender := <-changed:
			cancel()
			if err := <-done; err != nil {
				return err
			}
			if ctx.Err() != nil {
				return nil
			}

			next, err := resolve(handler.CurrentConfig())
			if err != nil {
				printer.Warn("Config change ignored", "error", err)
				continue
			}
			if !rerender {
				printer.Debug("Reusing banner", "speed", next.Speed, "width", next.Width)
				cfg = next
				continue
			}
			nextRes, err := buildBanner(printer, text, next)
			if err != nil {
				printer.Warn("Config change ignored", "error", err)
				continue
			}
			cfg, res = next, nextRes
			printer.Debug("Restarting marquee", "path", path)
		}
	}
}
