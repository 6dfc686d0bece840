package tray

import (
	"testing"

	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name string
		view timer.View
		want string
	}{
		{
			name: "running work",
			view: timer.View{Mode: model.ModeWork, Running: true, Status: timer.StatusRunning, Display: timer.FormatRemaining(1499)},
			want: "Status: work 24:59",
		},
		{
			name: "paused break",
			view: timer.View{Mode: model.ModeBreak, Status: timer.StatusPaused, Display: timer.FormatRemaining(65)},
			want: "Status: break 1:05 (paused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLabel(tt.view); got != tt.want {
				t.Fatalf("StatusLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateLabels(t *testing.T) {
	manager := New(nil, Callbacks{})

	manager.Update(timer.View{Mode: model.ModeWork, Running: true, Status: timer.StatusRunning, Display: timer.FormatRemaining(60)})
	if manager.toggleItem.Label != "Pause" {
		t.Fatalf("toggle label = %q, want Pause", manager.toggleItem.Label)
	}
	if manager.modeItem.Label != "Switch to break" {
		t.Fatalf("mode label = %q, want Switch to break", manager.modeItem.Label)
	}

	manager.Update(timer.View{Mode: model.ModeBreak, Status: timer.StatusIdle, Display: timer.FormatRemaining(300)})
	if manager.toggleItem.Label != "Start" {
		t.Fatalf("toggle label = %q, want Start", manager.toggleItem.Label)
	}
	if manager.modeItem.Label != "Switch to work" {
		t.Fatalf("mode label = %q, want Switch to work", manager.modeItem.Label)
	}
}

func TestCallbacksInvoked(t *testing.T) {
	toggles := 0
	manager := New(nil, Callbacks{OnToggle: func() { toggles++ }})

	manager.toggleItem.Action()
	manager.modeItem.Action()

	if toggles != 1 {
		t.Fatalf("toggles = %d, want 1", toggles)
	}
}
