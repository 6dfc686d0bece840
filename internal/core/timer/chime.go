package timer

// ChimePlayer plays the interval-completion cue.
type ChimePlayer interface {
	// Resume prepares playback. Some audio backends stay suspended until a
	// user gesture, so the engine calls it on every Start.
	Resume() error
	// Play fires the cue without waiting for it to finish.
	Play() error
}

// SilentChime is a ChimePlayer that does nothing.
type SilentChime struct{}

func (SilentChime) Resume() error { return nil }
func (SilentChime) Play() error   { return nil }
