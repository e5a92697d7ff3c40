// Package output provides terminal output for emjtxt: banners on stdout and
// styled log lines on stderr.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/levyxx/emjtxt/pkg/terminal"
)

// Printer writes banners to out and human-readable log lines to a
// charmbracelet logger.
type Printer struct {
	out    io.Writer
	logger *log.Logger
	isTTY  bool
}

// New creates a Printer with banners on stdout and logs on stderr.
func New() *Printer {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriter creates a Printer sending banners and logs to w.
func NewWithWriter(w io.Writer) *Printer {
	return NewWithWriters(w, w)
}

// NewWithWriters creates a Printer with separate banner and log writers.
func NewWithWriters(out, logOut io.Writer) *Printer {
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly, // HH:MM:SS
	})

	if terminal.IsTerminal(logOut) {
		logger.SetStyles(accentStyles())
	}

	return &Printer{
		out:    out,
		logger: logger,
		isTTY:  terminal.IsTerminal(out),
	}
}

// Out returns the banner writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// IsTTY reports whether the banner writer is a terminal.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Info logs an info message with optional key-value pairs.
func (p *Printer) Info(msg string, keyvals ...any) {
	p.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (p *Printer) Warn(msg string, keyvals ...any) {
	p.logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (p *Printer) Error(msg string, keyvals ...any) {
	p.logger.Error(msg, keyvals...)
}

// Debug logs a debug message with optional key-value pairs.
func (p *Printer) Debug(msg string, keyvals ...any) {
	p.logger.Debug(msg, keyvals...)
}

// SetDebug enables debug-level logging.
func (p *Printer) SetDebug(enabled bool) {
	if enabled {
		p.logger.SetLevel(log.DebugLevel)
	} else {
		p.logger.SetLevel(log.InfoLevel)
	}
}

// Banner writes a rendered banner followed by a newline. Banners are never
// styled: the emoji carry their own color.
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.out, text)
}

// Version prints the version banner and build details.
func (p *Printer) Version(banner, ver, commit, date string) {
	if banner != "" {
		p.Banner(banner)
		fmt.Fprintln(p.out)
	}

	if !p.isTTY {
		fmt.Fprintf(p.out, "emjtxt %s (commit: %s, built: %s)\n", ver, commit, date)
		return
	}

	accent := lipgloss.NewStyle().Foreground(ColorAccent)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(p.out, "  %s %s\n", muted.Render("version"), accent.Render(ver))
	fmt.Fprintf(p.out, "  %s  %s\n", muted.Render("commit"), commit)
	fmt.Fprintf(p.out, "  %s   %s\n", muted.Render("built"), date)
}

// Print writes a message directly to output without formatting.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a message with newline directly to output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
