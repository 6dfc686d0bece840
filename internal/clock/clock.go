// Package clock abstracts time sampling and periodic tickers so the timer
// engine can run against the real clock in production and a fake one in tests.
package clock

import "time"

// Clock supplies time samples and tickers.
type Clock interface {
	// Now returns the current time. The real clock's samples carry a monotonic
	// reading, so differences between them ignore wall-clock steps.
	Now() time.Time
	// NewTicker returns a Ticker firing every d. d must be positive.
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers periodic ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{inner: time.NewTicker(d)}
}

type realTicker struct {
	inner *time.Ticker
}

func (ticker *realTicker) C() <-chan time.Time { return ticker.inner.C }
func (ticker *realTicker) Stop()               { ticker.inner.Stop() }
