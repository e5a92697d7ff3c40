// Package reload re-reads the config file while a banner is animating.
package reload

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/levyxx/emjtxt/pkg/config"
	"github.com/levyxx/emjtxt/pkg/logging"
)

// ReloadResult contains the result of a reload operation.
type ReloadResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Changed []string `json:"changed,omitempty"`
	Render  bool     `json:"render"`
}

// Handler holds the last good configuration for a watched file. A config
// that fails to load or validate is reported and the previous one is kept.
type Handler struct {
	mu         sync.Mutex
	path       string
	currentCfg *config.Config
	logger     *slog.Logger
}

// NewHandler creates a reload handler.
func NewHandler(path string, current *config.Config) *Handler {
	return &Handler{
		path:       path,
		currentCfg: current,
		logger:     logging.NewDiscardLogger(),
	}
}

// SetLogger sets the logger.
func (h *Handler) SetLogger(logger *slog.Logger) {
	if logger != nil {
		h.logger = logger
	}
}

// CurrentConfig returns the last configuration that loaded successfully.
func (h *Handler) CurrentConfig() *config.Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentCfg
}

// Reload reads the file again. Load failures are reported in the result,
// not as an error, so a watcher keeps running after a bad save.
func (h *Handler) Reload() *ReloadResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logger.Debug("reloading configuration", "path", h.path)

	newCfg, err := config.Load(h.path)
	if err != nil {
		h.logger.Warn("config reload rejected", "error", err)
		return &ReloadResult{
			Success: false,
			Message: fmt.Sprintf("failed to load config: %v", err),
		}
	}

	diff := ComputeDiff(h.currentCfg, newCfg)
	if diff.IsEmpty() {
		h.logger.Debug("no configuration changes detected")
		return &ReloadResult{Success: true, Message: "no changes detected"}
	}

	h.currentCfg = newCfg
	h.logger.Info("config reloaded", "changed", diff.Changed)

	return &ReloadResult{
		Success: true,
		Message: "configuration reloaded",
		Changed: diff.Changed,
		Render:  diff.NeedsRender(),
	}
}
