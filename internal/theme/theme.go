// Package theme persists the light/dark display preference.
package theme

import "fmt"

// StorageKey is the key the preference is stored under.
const StorageKey = "cats-fanpage-theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Backend is a string key/value store.
type Backend interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Parse accepts only "light" and "dark".
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Resolve picks the stored theme when it is valid, otherwise the
// environment's preference.
func Resolve(stored string, prefersDark bool) Theme {
	if t, ok := Parse(stored); ok {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle button glyph for the theme.
func (t Theme) Icon() string {
	if t == Dark {
		return "🌙"
	}
	return "☀️"
}

// Load reads and resolves the stored theme. A read error still yields a
// resolved theme; the error is for logging.
func Load(b Backend, prefersDark bool) (Theme, error) {
	stored, _, err := b.GetItem(StorageKey)
	if err != nil {
		return Resolve("", prefersDark), fmt.Errorf("failed to read theme: %w", err)
	}
	return Resolve(stored, prefersDark), nil
}

// Save stores the theme.
func Save(b Backend, t Theme) error {
	if err := b.SetItem(StorageKey, string(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
