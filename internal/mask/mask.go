// Package mask shortens secrets for on-screen display.
//
// The transform is lossy and only meant to keep full keys off a shared
// screen. It is not encryption.
package mask

import "github.com/DaanHessen/gembooth-dash/internal/envfile"

// NotSet is the placeholder shown for variables missing from the env file.
const NotSet = "Not set"

// Ellipsis marks the elided middle of a masked value.
const Ellipsis = "..."

const (
	longThreshold  = 30
	longHead       = 20
	longTail       = 10
	shortThreshold = 10
	shortHead      = 10
)

// Secret returns a display-safe form of value:
// over 30 characters keeps the first 20 and last 10, over 10 keeps the
// first 10, anything shorter is returned as is. The NotSet placeholder
// passes through. Lengths count runes, so cuts never split a character.
func Secret(value string) string {
	if value == "" || value == NotSet {
		return value
	}
	runes := []rune(value)
	switch n := len(runes); {
	case n > longThreshold:
		return string(runes[:longHead]) + Ellipsis + string(runes[n-longTail:])
	case n > shortThreshold:
		return string(runes[:shortHead]) + Ellipsis
	default:
		return value
	}
}

// Value looks key up in env and masks it, rendering NotSet when absent.
func Value(env envfile.Map, key string) string {
	return Secret(env.Get(key, NotSet))
}
