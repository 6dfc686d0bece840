package timer

import (
	"fmt"
	"time"

	"pomotimer/internal/core/model"
)

// Elapsed returns Now - StartTime, or 0 when either sample is unset.
func (state State) Elapsed() time.Duration {
	if !state.started() {
		return 0
	}
	return state.Now.Sub(state.StartTime)
}

// ElapsedSeconds returns the elapsed time floored to whole seconds.
func (state State) ElapsedSeconds() int64 {
	return floorSeconds(state.Elapsed())
}

// RemainingSeconds returns the mode duration minus the elapsed seconds.
// The result goes negative when a tick lands past the boundary.
func (state State) RemainingSeconds(config model.TimerConfig) int64 {
	return floorSeconds(config.Duration(state.Mode)) - state.ElapsedSeconds()
}

// Completed reports whether the current run has reached its mode duration.
func (state State) Completed(config model.TimerConfig) bool {
	return state.started() && state.Elapsed() >= config.Duration(state.Mode)
}

func floorSeconds(duration time.Duration) int64 {
	seconds := int64(duration / time.Second)
	if duration < 0 && duration%time.Second != 0 {
		seconds--
	}
	return seconds
}

// Display is the clamped minutes:seconds rendering of a remaining time.
type Display struct {
	Minutes int64
	Seconds string
}

// FormatRemaining renders remaining seconds for display, clamping negatives to 0:00.
func FormatRemaining(remaining int64) Display {
	if remaining < 0 {
		remaining = 0
	}
	return Display{
		Minutes: remaining / 60,
		Seconds: fmt.Sprintf("%02d", remaining%60),
	}
}

func (display Display) String() string {
	return fmt.Sprintf("%d:%s", display.Minutes, display.Seconds)
}
