package timer

import (
	"time"

	"pomotimer/internal/core/model"
)

// State is an immutable snapshot of the countdown.
// Zero StartTime and Now mean the timer has not been started since the last reset.
type State struct {
	Mode      model.Mode
	Running   bool
	StartTime time.Time
	Now       time.Time

	// Paused marks a suspended run; PausedElapsed is the run time consumed
	// before the stop. Start rebases StartTime by it.
	Paused        bool
	PausedElapsed time.Duration
}

// InitialState returns a stopped, never-started state in mode.
func InitialState(mode model.Mode) State {
	return State{Mode: mode}
}

// ActionType identifies a transition.
type ActionType int

const (
	ActionStart ActionType = iota + 1
	ActionStop
	ActionReset
	ActionTick
	ActionChangeMode
)

func (actionType ActionType) String() string {
	switch actionType {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	case ActionReset:
		return "reset"
	case ActionTick:
		return "tick"
	case ActionChangeMode:
		return "change_mode"
	default:
		return "unknown"
	}
}

// Action is a transition request. At is the clock sample taken when the
// action was dispatched; Stop, Reset and ChangeMode ignore it.
type Action struct {
	Type ActionType
	At   time.Time
}

// Transition applies action to state and returns the new state.
// It never fails: out-of-context actions leave the state unchanged.
func Transition(state State, action Action) State {
	switch action.Type {
	case ActionStart:
		startTime := action.At
		if state.Paused {
			startTime = action.At.Add(-state.PausedElapsed)
		}
		state.Running = true
		state.StartTime = startTime
		state.Now = action.At
		state.Paused = false
		state.PausedElapsed = 0
		return state

	case ActionStop:
		state.Running = false
		if state.started() {
			state.Paused = true
			state.PausedElapsed = state.Now.Sub(state.StartTime)
		} else {
			state.Paused = false
			state.PausedElapsed = 0
		}
		return state

	case ActionReset:
		return InitialState(state.Mode)

	case ActionTick:
		if !state.Running {
			return state
		}
		state.Now = action.At
		return state

	case ActionChangeMode:
		return InitialState(state.Mode.Toggle())

	default:
		return state
	}
}

func (state State) started() bool {
	return !state.StartTime.IsZero() && !state.Now.IsZero()
}
