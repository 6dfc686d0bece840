package model

import "time"

// Mode selects which interval duration applies.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Toggle returns the other mode.
func (mode Mode) Toggle() Mode {
	if mode == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// Label returns a display name for the mode.
func (mode Mode) Label() string {
	if mode == ModeBreak {
		return "Break"
	}
	return "Work"
}

// TimerConfig maps each mode to its interval duration.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultTimerConfig returns the classic 25/5 Pomodoro table.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	}
}

// Duration returns the interval length for mode.
func (config TimerConfig) Duration(mode Mode) time.Duration {
	if mode == ModeBreak {
		return config.Break
	}
	return config.Work
}
