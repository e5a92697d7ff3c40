package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levyxx/emjtxt/pkg/terminal"
)

// syncBuffer is a bytes.Buffer safe for the marquee, printer and watcher
// goroutines to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// startAnimate runs the command in the background until the returned stop
// func is called. stop returns the command's error.
func startAnimate(t *testing.T, args ...string) (out, errOut *syncBuffer, stop func() error) {
	t.Helper()
	out, errOut = &syncBuffer{}, &syncBuffer{}

	cmd := newRootCmd(&app{})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	var once sync.Once
	var err error
	stop = func() error {
		once.Do(func() {
			cancel()
			select {
			case err = <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("animate did not stop after cancel")
			}
		})
		return err
	}
	t.Cleanup(func() { _ = stop() })
	return out, errOut, stop
}

func waitFor(t *testing.T, buf *syncBuffer, substr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), substr)
	}, 5*time.Second, 10*time.Millisecond, "waiting for %q", substr)
}

func TestAnimate_WatchRestartsOnChange(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "speed: 20\nwidth: 8\nemoji: [\"🟦\"]\n")

	out, errOut, stop := startAnimate(t, "animate", "--config", path, "--watch", "HI")
	waitFor(t, out, "🟦")
	waitFor(t, errOut, "watching config")

	require.NoError(t, os.WriteFile(path, []byte("speed: 20\nwidth: 8\nemoji: [\"🟥\"]\n"), 0644))
	waitFor(t, out, "🟥")

	// Resolves to nothing, so the banner cannot be rebuilt.
	require.NoError(t, os.WriteFile(path, []byte("speed: 20\nwidth: 8\nemoji: [\":no_such_emoji_here:\"]\n"), 0644))
	waitFor(t, errOut, "Config change ignored")

	before := strings.Count(out.String(), "🟥")
	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "🟥") > before
	}, 5*time.Second, 10*time.Millisecond, "previous banner should keep scrolling")

	require.NoError(t, stop())

	final := out.String()
	hides := strings.Count(final, terminal.CursorHide)
	shows := strings.Count(final, terminal.CursorShow)
	assert.GreaterOrEqual(t, hides, 2, "each restart hides the cursor again")
	assert.Equal(t, hides, shows, "every run restores the cursor once")
}

func TestAnimate_WatchSpeedChangeReusesBanner(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "speed: 20\nwidth: 8\n")

	out, errOut, stop := startAnimate(t, "animate", "--config", path, "--watch", "--verbose", "HI")
	waitFor(t, out, "🟩")
	waitFor(t, errOut, "watching config")

	require.NoError(t, os.WriteFile(path, []byte("speed: 10\nwidth: 8\n"), 0644))
	waitFor(t, errOut, "Reusing banner")

	require.NoError(t, stop())
	assert.NotContains(t, errOut.String(), "Restarting marquee")
	assert.Equal(t, strings.Count(out.String(), terminal.CursorHide), strings.Count(out.String(), terminal.CursorShow))
}

func TestAnimate_WatchRejectsInvalidConfig(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "speed: 20\nwidth: 8\nemoji: [\"🟦\"]\n")

	out, errOut, stop := startAnimate(t, "animate", "--config", path, "--watch", "HI")
	waitFor(t, out, "🟦")
	waitFor(t, errOut, "watching config")

	require.NoError(t, os.WriteFile(path, []byte("mode: sparkle\n"), 0644))
	waitFor(t, errOut, "config reload rejected")

	before := strings.Count(out.String(), "🟦")
	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "🟦") > before
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, stop())
	// A rejected file never interrupts the running marquee.
	assert.Equal(t, 1, strings.Count(out.String(), terminal.CursorHide))
}
