package timer

import (
	"log"
	"sync"
	"time"

	"pomotimer/internal/clock"
	"pomotimer/internal/core/model"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
}

// tickSource is one armed ticker and the goroutine draining it.
type tickSource struct {
	ticker clock.Ticker
	stopCh chan struct{}
}

// Engine drives the Work/Break countdown. Control operations and ticks are
// serialized by mu, so the chime and auto-advance run as one critical section.
// A ChimePlayer must not call back into the Engine.
type Engine struct {
	mu        sync.Mutex
	timers    model.TimerConfig
	options   Config
	chime     ChimePlayer
	state     State
	lifecycle *lifecycle
	source    *tickSource
	events    []chan Event
	closed    bool
}

// New creates an Engine in Work mode, stopped.
func New(timers model.TimerConfig, chime ChimePlayer, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if chime == nil {
		chime = SilentChime{}
	}
	defaults := model.DefaultTimerConfig()
	if timers.Work <= 0 {
		timers.Work = defaults.Work
	}
	if timers.Break <= 0 {
		timers.Break = defaults.Break
	}

	return &Engine{
		timers:    timers,
		options:   options,
		chime:     chime,
		state:     InitialState(model.ModeWork),
		lifecycle: newLifecycle(),
	}
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Start begins or resumes counting. While already running it only re-arms
// the tick source and keeps the elapsed time.
func (engine *Engine) Start() {
	engine.mu.Lock()
	closed := engine.closed
	engine.mu.Unlock()
	if closed {
		return
	}
	resumeErr := engine.chime.Resume()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	if resumeErr != nil {
		engine.reportChimeErrorLocked("resume", resumeErr)
	}

	now := engine.options.Clock.Now()
	if engine.state.Running {
		engine.applyLocked(Action{Type: ActionTick, At: now})
	} else {
		engine.applyLocked(Action{Type: ActionStart, At: now})
		engine.lifecycle.fire(lifecycleStart)
	}
	engine.armTickLocked()
	engine.emitLocked(Event{Type: EventStateChange, View: engine.viewLocked(), At: now})
}

// Stop pauses counting and captures the elapsed run time. An interval that
// ran out since the last tick completes first, and the next one is paused at
// its full duration.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || !engine.lifecycle.can(lifecycleStop) {
		return
	}

	now := engine.options.Clock.Now()
	engine.applyLocked(Action{Type: ActionTick, At: now})
	if engine.state.Completed(engine.timers) {
		engine.completeLocked(now)
	}
	engine.pauseLocked()
	engine.emitLocked(Event{Type: EventStateChange, View: engine.viewLocked(), At: now})
}

// pauseLocked cancels the tick source and snapshots the sampled state.
func (engine *Engine) pauseLocked() {
	engine.cancelTickLocked()
	engine.applyLocked(Action{Type: ActionStop})
	engine.lifecycle.fire(lifecycleStop)
}

// Reset stops the timer and restores the full duration of the current mode.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}

	engine.cancelTickLocked()
	engine.applyLocked(Action{Type: ActionReset})
	engine.lifecycle.fire(lifecycleReset)
	engine.emitLocked(Event{Type: EventStateChange, View: engine.viewLocked(), At: engine.options.Clock.Now()})
}

// ChangeMode resets the timer and switches between Work and Break.
func (engine *Engine) ChangeMode() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}

	engine.cancelTickLocked()
	engine.applyLocked(Action{Type: ActionChangeMode})
	engine.lifecycle.fire(lifecycleChangeMode)
	engine.emitLocked(Event{Type: EventStateChange, View: engine.viewLocked(), At: engine.options.Clock.Now()})
}

// Close pauses a running countdown, cancels the tick source and closes
// observers. The Engine ignores further operations.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	if engine.lifecycle.can(lifecycleStop) {
		engine.applyLocked(Action{Type: ActionTick, At: engine.options.Clock.Now()})
		engine.pauseLocked()
	}
	engine.cancelTickLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// View returns the derived display fields.
func (engine *Engine) View() View {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.viewLocked()
}

// Mode returns the active mode.
func (engine *Engine) Mode() model.Mode {
	return engine.Snapshot().Mode
}

// IsRunning reports whether the countdown is ticking.
func (engine *Engine) IsRunning() bool {
	return engine.Snapshot().Running
}

// DisplayMinutes returns the whole minutes left, clamped at zero.
func (engine *Engine) DisplayMinutes() int64 {
	return engine.View().Display.Minutes
}

// DisplaySeconds returns the two-digit seconds left, clamped at "00".
func (engine *Engine) DisplaySeconds() string {
	return engine.View().Display.Seconds
}

// Status returns the lifecycle status.
func (engine *Engine) Status() Status {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.lifecycle.status()
}

// Timers returns the duration table.
func (engine *Engine) Timers() model.TimerConfig {
	return engine.timers
}

func (engine *Engine) applyLocked(action Action) {
	engine.state = Transition(engine.state, action)
}

// armTickLocked replaces the active tick source with a new one.
func (engine *Engine) armTickLocked() {
	engine.cancelTickLocked()
	source := &tickSource{
		ticker: engine.options.Clock.NewTicker(engine.options.TickInterval),
		stopCh: make(chan struct{}),
	}
	engine.source = source
	go engine.run(source)
}

// cancelTickLocked invalidates the active tick source before returning, so a
// tick already in flight is discarded by handleTick.
func (engine *Engine) cancelTickLocked() {
	if engine.source == nil {
		return
	}
	engine.source.ticker.Stop()
	close(engine.source.stopCh)
	engine.source = nil
}

func (engine *Engine) run(source *tickSource) {
	for {
		select {
		case <-source.stopCh:
			return
		case <-source.ticker.C():
			engine.handleTick(source)
		}
	}
}

func (engine *Engine) handleTick(source *tickSource) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.source != source {
		return
	}

	now := engine.options.Clock.Now()
	engine.applyLocked(Action{Type: ActionTick, At: now})
	if engine.state.Completed(engine.timers) {
		engine.completeLocked(now)
		return
	}
	engine.emitLocked(Event{Type: EventTick, View: engine.viewLocked(), At: now})
}

// completeLocked plays the chime, switches mode and starts the next interval.
func (engine *Engine) completeLocked(now time.Time) {
	finished := engine.state.Mode
	if err := engine.chime.Play(); err != nil {
		engine.reportChimeErrorLocked("play", err)
	}

	engine.cancelTickLocked()
	engine.applyLocked(Action{Type: ActionChangeMode})
	engine.lifecycle.fire(lifecycleChangeMode)

	if err := engine.chime.Resume(); err != nil {
		engine.reportChimeErrorLocked("resume", err)
	}
	engine.applyLocked(Action{Type: ActionStart, At: now})
	engine.lifecycle.fire(lifecycleStart)
	engine.armTickLocked()

	view := engine.viewLocked()
	engine.emitLocked(Event{Type: EventComplete, View: view, Finished: finished, At: now})
	engine.emitLocked(Event{Type: EventStateChange, View: view, At: now})
}

func (engine *Engine) viewLocked() View {
	remaining := engine.state.RemainingSeconds(engine.timers)
	display := FormatRemaining(remaining)
	if remaining < 0 {
		remaining = 0
	}
	return View{
		Mode:      engine.state.Mode,
		Running:   engine.state.Running,
		Status:    engine.lifecycle.status(),
		Remaining: time.Duration(remaining) * time.Second,
		Display:   display,
	}
}

func (engine *Engine) reportChimeErrorLocked(op string, err error) {
	log.Printf("timer: chime %s failed: %v", op, err)
	engine.emitLocked(Event{
		Type:    EventChimeError,
		View:    engine.viewLocked(),
		Message: err.Error(),
		At:      engine.options.Clock.Now(),
	})
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
