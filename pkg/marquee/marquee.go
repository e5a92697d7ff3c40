// Package marquee scrolls a multi-line banner right to left across a fixed
// width terminal viewport, redrawing in place.
package marquee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/levyxx/emjtxt/pkg/logging"
	"github.com/levyxx/emjtxt/pkg/render"
	"github.com/levyxx/emjtxt/pkg/terminal"
	"github.com/levyxx/emjtxt/pkg/textwidth"
)

// ErrInvalidInput is returned for an empty banner or a non-positive speed.
var ErrInvalidInput = errors.New("invalid input")

// DefaultSpeed is the pause between frames when none is configured.
const DefaultSpeed = 100 * time.Millisecond

// Config controls a single animation run.
type Config struct {
	// Speed is the pause after each frame. Must be at least 1ms.
	Speed time.Duration
	// Width is the viewport width in columns. Values < 1 fall back to
	// terminal.DefaultWidth.
	Width int
}

// Animator draws frames to an output writer. It owns the cursor state of
// that writer while a run is active.
type Animator struct {
	out    io.Writer
	cfg    Config
	width  textwidth.Engine
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates an Animator writing to w.
func New(w io.Writer, cfg Config) *Animator {
	return &Animator{
		out:    w,
		cfg:    cfg,
		logger: logging.NewDiscardLogger(),
		sleep:  sleepContext,
	}
}

// SetLogger sets the logger for run events.
func (a *Animator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// SetWidthEngine sets the column measure used for slicing and padding.
func (a *Animator) SetWidthEngine(e textwidth.Engine) {
	a.width = e
}

// Run scrolls banner until ctx is cancelled. Cancellation is observed
// between frames and is not an error.
func (a *Animator) Run(ctx context.Context, banner render.Result) error {
	return a.run(ctx, banner, false)
}

// RunOnce scrolls banner through exactly one full cycle, or until ctx is
// cancelled.
func (a *Animator) RunOnce(ctx context.Context, banner render.Result) error {
	return a.run(ctx, banner, true)
}

// TotalFrames is the cycle length: the banner enters from the right edge and
// fully leaves on the left.
func TotalFrames(width, bannerWidth int) int {
	return width + bannerWidth
}

// Offset is the column of the banner's left edge at frame. Negative values
// mean the banner has scrolled past the left edge.
func Offset(width, frame int) int {
	return width - frame
}

// FrameLine returns the visible part of line at frame, exactly width
// columns wide.
func FrameLine(e textwidth.Engine, line string, width, frame int) string {
	offset := Offset(width, frame)

	var visible string
	if offset >= 0 {
		part, _ := e.Substring(line, 0, width-offset)
		visible = strings.Repeat(" ", offset) + part
	} else {
		visible, _ = e.Substring(line, -offset, width)
	}
	// A wide glyph straddling the right edge would overflow and wrap.
	visible = e.Clip(visible, width)
	return e.Pad(visible, width, " ")
}

func (a *Animator) run(ctx context.Context, banner render.Result, bounded bool) (err error) {
	speed := a.cfg.Speed
	if speed < time.Millisecond {
		return fmt.Errorf("%w: speed %s is below 1ms", ErrInvalidInput, speed)
	}
	lines := banner.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("%w: empty banner", ErrInvalidInput)
	}

	width := a.cfg.Width
	if width < 1 {
		a.logger.Debug("no viewport width, using default", "width", terminal.DefaultWidth)
		width = terminal.DefaultWidth
	}

	bannerWidth := 0
	for _, line := range lines {
		bannerWidth = max(bannerWidth, a.width.VisualWidth(line))
	}
	for i, line := range lines {
		lines[i] = a.width.Pad(line, bannerWidth, " ")
	}
	total := TotalFrames(width, bannerWidth)

	restore, err := a.hideCursor(len(lines))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, restore())
	}()

	a.logger.Debug("marquee started",
		"width", width, "banner_width", bannerWidth, "frames", total, "speed", speed, "bounded", bounded)

	var buf strings.Builder
	for frame, ticks := 0, 0; ; frame = (frame + 1) % total {
		buf.Reset()
		a.writeFrame(&buf, lines, width, frame)
		if _, err := io.WriteString(a.out, buf.String()); err != nil {
			return fmt.Errorf("writing frame %d: %w", frame, err)
		}
		ticks++

		if err := a.sleep(ctx, speed); err != nil {
			a.logger.Debug("marquee interrupted", "frame", frame, "reason", err)
			return nil
		}
		if bounded && ticks == total {
			a.logger.Debug("marquee cycle complete", "frames", ticks)
			return nil
		}
	}
}

// writeFrame draws every line and leaves the cursor at column 0 of the
// banner's first row.
func (a *Animator) writeFrame(b *strings.Builder, lines []string, width, frame int) {
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("\r")
		b.WriteString(terminal.ClearLine)
		b.WriteString(FrameLine(a.width, line, width, frame))
	}
	b.WriteString(terminal.CursorUp(len(lines) - 1))
	b.WriteString("\r")
}

// hideCursor hides the cursor and returns a func that shows it again and
// moves below the banner. The returned func only writes once.
func (a *Animator) hideCursor(height int) (func() error, error) {
	if _, err := io.WriteString(a.out, terminal.CursorHide); err != nil {
		return nil, fmt.Errorf("hiding cursor: %w", err)
	}
	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			_, err = io.WriteString(a.out, terminal.CursorDown(height-1)+terminal.CursorShow+"\n")
			if err != nil {
				err = fmt.Errorf("restoring cursor: %w", err)
			}
		})
		return err
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
