// Package emoji resolves shortcode aliases such as ":fire:" to emoji.
package emoji

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark-emoji/definition"
)

var (
	// ErrInvalidInput is returned for empty aliases or lists.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownEmoji is returned when an alias is not in the table.
	ErrUnknownEmoji = errors.New("unknown emoji")
)

var table = definition.Github()

// Resolve turns an alias or literal into a glyph. Aliases may be written with
// or without surrounding colons. Input containing non-ASCII runes, or a single
// ASCII character, is returned as given.
func Resolve(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty emoji", ErrInvalidInput)
	}
	if !isASCII(s) {
		return s, nil
	}

	name := strings.ToLower(strings.Trim(s, ":"))
	if e, ok := table.Get(name); ok && len(e.Unicode) > 0 {
		return string(e.Unicode), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEmoji, s)
}

// ResolveList resolves every entry in order.
func ResolveList(list []string) ([]string, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no emoji given", ErrInvalidInput)
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		g, err := Resolve(s)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Split breaks a comma separated flag value into entries, dropping empties.
func Split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
