package model

import "time"

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration

	// ChimeFile points at an mp3 or wav file. Empty selects the built-in tone.
	ChimeFile string
	// ChimeVolume is a base-2 gain applied to the chime, 0 keeps it unchanged.
	ChimeVolume float64
}

// DefaultSettings returns default settings for pomotimer.
func DefaultSettings() Settings {
	defaults := DefaultTimerConfig()
	return Settings{
		WorkDuration:  defaults.Work,
		BreakDuration: defaults.Break,
	}
}

// TimerConfig converts settings to the engine's duration table.
func (settings Settings) TimerConfig() TimerConfig {
	return TimerConfig{
		Work:  settings.WorkDuration,
		Break: settings.BreakDuration,
	}
}
