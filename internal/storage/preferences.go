package storage

import (
	"errors"
	"time"
)

// ErrUnavailable is returned by Open on platforms without a usable
// filesystem (the browser build).
var ErrUnavailable = errors.New("storage unavailable on this platform")

const (
	keyPreferences = "preferences"
	keyFirstLaunch = "first_launch"
)

// Preferences stores the user's display settings.
type Preferences struct {
	Locale          string    `json:"locale"`
	ShowCoordinates bool      `json:"show_coordinates"`
	FillHighlights  bool      `json:"fill_highlights"`
	SoundEnabled    bool      `json:"sound_enabled"`
	LastUsed        time.Time `json:"last_used"`
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Locale:          "en",
		ShowCoordinates: true,
		FillHighlights:  true,
		SoundEnabled:    true,
	}
}
