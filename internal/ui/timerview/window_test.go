package timerview

import (
	"testing"
	"time"

	"pomotimer/internal/clock"
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func newTestWindow(t *testing.T) (*Window, *timer.Engine, *clock.FakeClock) {
	t.Helper()
	app := test.NewTempApp(t)
	fake := clock.Fake(time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC))
	engine := timer.New(model.DefaultTimerConfig(), nil, timer.Config{Clock: fake})
	t.Cleanup(engine.Close)
	return New(app, "pomotimer", engine), engine, fake
}

func TestWindowInitialRender(t *testing.T) {
	view, _, _ := newTestWindow(t)

	if got := view.ClockText(); got != "25:00" {
		t.Fatalf("clock = %q, want 25:00", got)
	}
	if view.workButton.Importance != widget.HighImportance {
		t.Fatal("work button should be highlighted")
	}
}

func TestWindowToggleStartsAndStops(t *testing.T) {
	view, engine, fake := newTestWindow(t)

	test.Tap(view.toggleButton)
	if !engine.IsRunning() {
		t.Fatal("toggle did not start the timer")
	}

	fake.Advance(65 * time.Second)
	test.Tap(view.toggleButton)
	if engine.IsRunning() {
		t.Fatal("toggle did not stop the timer")
	}
	if got := view.ClockText(); got != "23:55" {
		t.Fatalf("clock = %q, want 23:55", got)
	}
}

func TestWindowModeButtons(t *testing.T) {
	view, engine, _ := newTestWindow(t)

	test.Tap(view.workButton)
	if engine.Mode() != model.ModeWork {
		t.Fatal("tapping the active mode switched modes")
	}

	test.Tap(view.breakButton)
	if engine.Mode() != model.ModeBreak {
		t.Fatalf("Mode = %s, want break", engine.Mode())
	}
	if got := view.ClockText(); got != "5:00" {
		t.Fatalf("clock = %q, want 5:00", got)
	}
	if view.breakButton.Importance != widget.HighImportance {
		t.Fatal("break button should be highlighted")
	}
}

func TestWindowReset(t *testing.T) {
	view, engine, fake := newTestWindow(t)

	test.Tap(view.toggleButton)
	fake.Advance(3 * time.Minute)
	test.Tap(view.resetButton)

	if engine.IsRunning() {
		t.Fatal("reset left the timer running")
	}
	if got := view.ClockText(); got != "25:00" {
		t.Fatalf("clock = %q, want 25:00", got)
	}
}
