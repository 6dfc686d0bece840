package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomotimer/internal/core/model"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := model.Settings{
		WorkDuration:  50 * time.Minute,
		BreakDuration: 10 * time.Minute,
		ChimeFile:     "/tmp/bell.wav",
		ChimeVolume:   -1.5,
	}

	if err := SaveSettingsTo(path, want); err != nil {
		t.Fatalf("SaveSettingsTo: %v", err)
	}
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadSettingsIgnoresOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "work_minutes: 0\nbreak_minutes: 500\nchime_volume: 9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("work_minutes: 30\nbreak_minutes: 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("POMOTIMER_BREAK_MINUTES", "7")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings.WorkDuration != 30*time.Minute {
		t.Fatalf("WorkDuration = %v, want 30m", settings.WorkDuration)
	}
	if settings.BreakDuration != 7*time.Minute {
		t.Fatalf("BreakDuration = %v, want 7m", settings.BreakDuration)
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("work_minutes: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	settings, err := LoadSettingsFrom(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("settings on error = %+v, want defaults", settings)
	}
}
