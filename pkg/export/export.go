// Package export delivers a finished banner to a file, the clipboard or a
// Slack message payload. Banner text is never altered beyond a trailing
// newline for files.
package export

//go:generate mockgen -destination=mock_clipboard_test.go -package=export . Clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrInvalidPath is returned for empty or directory targets.
var ErrInvalidPath = errors.New("invalid export path")

// Plain returns the banner with a single trailing newline.
func Plain(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}

// SanitizePath cleans path and replaces characters that are not allowed in
// file names on common filesystems. Directory separators are kept.
func SanitizePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, path)
	}

	dir, name := filepath.Split(filepath.Clean(path))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case strings.ContainsRune(`<>:"|?*\`, r):
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidPath, path)
	}
	return filepath.Join(dir, name), nil
}

// File writes the banner to path, creating parent directories. It returns
// the sanitized path that was written.
func File(path, text string) (string, error) {
	clean, err := SanitizePath(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, clean)
	}

	if dir := filepath.Dir(clean); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(clean, []byte(Plain(text)), 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return clean, nil
}

// Clipboard is a text clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard via pbcopy, xclip, xsel,
// wl-copy or the Windows API.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// CopyToClipboard copies the banner to cb.
func CopyToClipboard(cb Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// SlackMessage is a chat.postMessage / incoming webhook payload.
type SlackMessage struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock is a Block Kit layout block.
type SlackBlock struct {
	Type string     `json:"type"`
	Text *SlackText `json:"text,omitempty"`
}

// SlackText is a Block Kit text object.
type SlackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// SlackPayload builds a message with the banner in a single section block.
// The top-level text is the notification fallback.
func SlackPayload(text string) ([]byte, error) {
	msg := SlackMessage{
		Text: text,
		Blocks: []SlackBlock{{
			Type: "section",
			Text: &SlackText{Type: "plain_text", Text: text, Emoji: true},
		}},
	}
	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling slack payload: %w", err)
	}
	return data, nil
}
