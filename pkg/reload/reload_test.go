package reload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/levyxx/emjtxt/pkg/config"
)

func newHandler(t *testing.T, content string) (*Handler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(path, cfg), path
}

func TestHandler_NoChanges(t *testing.T) {
	h, _ := newHandler(t, "mode: solid\n")

	res := h.Reload()
	if !res.Success || len(res.Changed) != 0 || res.Render {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestHandler_AppliesChanges(t *testing.T) {
	h, path := newHandler(t, "mode: solid\n")
	if err := os.WriteFile(path, []byte("mode: cycle\nemoji: [\"🟥\", \"🟦\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := h.Reload()
	if !res.Success || !res.Render {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := h.CurrentConfig().Mode; got != "cycle" {
		t.Errorf("mode = %q, want cycle", got)
	}
	if got := len(h.CurrentConfig().Emoji); got != 2 {
		t.Errorf("emoji count = %d, want 2", got)
	}
}

func TestHandler_KeepsLastGoodConfig(t *testing.T) {
	h, path := newHandler(t, "mode: cycle\n")
	if err := os.WriteFile(path, []byte("mode: sparkle\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := h.Reload()
	if res.Success {
		t.Fatal("expected invalid config to be rejected")
	}
	if got := h.CurrentConfig().Mode; got != "cycle" {
		t.Errorf("mode = %q, want previous value cycle", got)
	}
}

func TestHandler_SpeedOnly(t *testing.T) {
	h, path := newHandler(t, "speed: 100\n")
	if err := os.WriteFile(path, []byte("speed: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := h.Reload()
	if !res.Success || res.Render {
		t.Errorf("unexpected result: %+v", res)
	}
	if got := h.CurrentConfig().Speed; got != 30 {
		t.Errorf("speed = %d, want 30", got)
	}
}
