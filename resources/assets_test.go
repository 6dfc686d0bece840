package resources

import (
	"testing"

	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
)

func TestIconsEmbedded(t *testing.T) {
	for _, name := range []string{"work.svg", "break.svg", "paused.svg"} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("Icon(%q): %v", name, err)
		}
		if len(resource.Content()) == 0 {
			t.Fatalf("Icon(%q) is empty", name)
		}
	}
	if _, err := Icon("missing.svg"); err == nil {
		t.Fatal("expected error for missing icon")
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		view timer.View
		want string
	}{
		{view: timer.View{Mode: model.ModeWork, Status: timer.StatusRunning}, want: "work.svg"},
		{view: timer.View{Mode: model.ModeBreak, Status: timer.StatusIdle}, want: "break.svg"},
		{view: timer.View{Mode: model.ModeBreak, Status: timer.StatusPaused}, want: "paused.svg"},
	}
	for _, tt := range tests {
		if got := StatusIcon(tt.view).Name(); got != tt.want {
			t.Errorf("StatusIcon(%+v) = %q, want %q", tt.view, got, tt.want)
		}
	}
}
