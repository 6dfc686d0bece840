package timer

import (
	"context"
	"errors"
	"log"

	"github.com/looplab/fsm"
)

// Status is the coarse lifecycle of the countdown.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

const (
	lifecycleStart      = "start"
	lifecycleStop       = "stop"
	lifecycleReset      = "reset"
	lifecycleChangeMode = "change_mode"
)

type lifecycle struct {
	machine *fsm.FSM
}

func newLifecycle() *lifecycle {
	idle := string(StatusIdle)
	running := string(StatusRunning)
	paused := string(StatusPaused)
	every := []string{idle, running, paused}

	return &lifecycle{
		machine: fsm.NewFSM(
			idle,
			fsm.Events{
				{Name: lifecycleStart, Src: every, Dst: running},
				{Name: lifecycleStop, Src: []string{running}, Dst: paused},
				{Name: lifecycleReset, Src: every, Dst: idle},
				{Name: lifecycleChangeMode, Src: every, Dst: idle},
			},
			fsm.Callbacks{},
		),
	}
}

// fire applies event. Self-transitions and events that are not valid from the
// current status are no-ops.
func (machine *lifecycle) fire(event string) {
	err := machine.machine.Event(context.Background(), event)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	var invalid fsm.InvalidEventError
	if errors.As(err, &noTransition) || errors.As(err, &invalid) {
		return
	}
	log.Printf("timer: lifecycle %s: %v", event, err)
}

// can reports whether event leads out of the current status.
func (machine *lifecycle) can(event string) bool {
	return machine.machine.Can(event)
}

func (machine *lifecycle) status() Status {
	return Status(machine.machine.Current())
}
