package preferences

import (
	"testing"
	"time"

	"pomotimer/internal/core/model"

	"fyne.io/fyne/v2/test"
)

func TestSaveParsesEntries(t *testing.T) {
	app := test.NewTempApp(t)

	var saved model.Settings
	prefs := New(app, model.DefaultSettings(), func(settings model.Settings) {
		saved = settings
	})

	if prefs.workMin.Text != "25" || prefs.breakMin.Text != "5" {
		t.Fatalf("entries = %q/%q, want 25/5", prefs.workMin.Text, prefs.breakMin.Text)
	}

	prefs.workMin.SetText("50")
	prefs.breakMin.SetText("not a number")
	prefs.chime.SetText("  /tmp/bell.mp3 ")
	prefs.volume.SetValue(-2)
	prefs.handleSave()

	if saved.WorkDuration != 50*time.Minute {
		t.Fatalf("WorkDuration = %v, want 50m", saved.WorkDuration)
	}
	if saved.BreakDuration != 5*time.Minute {
		t.Fatalf("BreakDuration = %v, want unchanged 5m", saved.BreakDuration)
	}
	if saved.ChimeFile != "/tmp/bell.mp3" {
		t.Fatalf("ChimeFile = %q", saved.ChimeFile)
	}
	if saved.ChimeVolume != -2 {
		t.Fatalf("ChimeVolume = %v, want -2", saved.ChimeVolume)
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := map[string]bool{
		"15":  true,
		" 3 ": true,
		"0":   false,
		"-4":  false,
		"abc": false,
		"":    false,
	}
	for input, want := range tests {
		if _, ok := parsePositiveInt(input); ok != want {
			t.Errorf("parsePositiveInt(%q) ok = %v, want %v", input, ok, want)
		}
	}
}
