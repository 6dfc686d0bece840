package clock

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock for tests.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	created int
	stopped int
}

// Fake returns a FakeClock positioned at start.
func Fake(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the fake current time.
func (fake *FakeClock) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// NewTicker registers a ticker that fires as Advance crosses its period.
func (fake *FakeClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive ticker interval")
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()
	ticker := &fakeTicker{
		clock:  fake,
		ch:     make(chan time.Time, 1),
		period: d,
		next:   fake.now.Add(d),
	}
	fake.tickers = append(fake.tickers, ticker)
	fake.created++
	return ticker
}

// Advance moves the clock forward by d and fires due tickers. Like a real
// ticker, a tick that finds the channel full is dropped.
func (fake *FakeClock) Advance(d time.Duration) {
	fake.mu.Lock()
	fake.now = fake.now.Add(d)
	now := fake.now
	var due []*fakeTicker
	for _, ticker := range fake.tickers {
		if ticker.stopped || now.Before(ticker.next) {
			continue
		}
		for !now.Before(ticker.next) {
			ticker.next = ticker.next.Add(ticker.period)
		}
		due = append(due, ticker)
	}
	fake.mu.Unlock()

	for _, ticker := range due {
		select {
		case ticker.ch <- now:
		default:
		}
	}
}

// ActiveTickers reports tickers created and not yet stopped.
func (fake *FakeClock) ActiveTickers() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.created - fake.stopped
}

// TickersCreated reports how many tickers were ever created.
func (fake *FakeClock) TickersCreated() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.created
}

// TickersStopped reports how many tickers were stopped.
func (fake *FakeClock) TickersStopped() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.stopped
}

type fakeTicker struct {
	clock   *FakeClock
	ch      chan time.Time
	period  time.Duration
	next    time.Time
	stopped bool
}

func (ticker *fakeTicker) C() <-chan time.Time { return ticker.ch }

func (ticker *fakeTicker) Stop() {
	ticker.clock.mu.Lock()
	defer ticker.clock.mu.Unlock()
	if ticker.stopped {
		return
	}
	ticker.stopped = true
	ticker.clock.stopped++
}
