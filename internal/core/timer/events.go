package timer

import (
	"time"

	"pomotimer/internal/core/model"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
	EventChimeError  EventType = "chime_error"
)

// Event represents an Engine update for observers.
type Event struct {
	Type EventType
	View View
	// Finished is the mode whose interval just ended, set on EventComplete.
	Finished model.Mode
	Message  string
	At       time.Time
}

// View is the read-only projection a front end renders.
type View struct {
	Mode      model.Mode
	Running   bool
	Status    Status
	Remaining time.Duration
	Display   Display
}
