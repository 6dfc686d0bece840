package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func TestDefaultChimeLength(t *testing.T) {
	player, err := NewPlayer(Options{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	want := outputSampleRate.N(DefaultChime[1].Offset + DefaultChime[1].Length)
	if got := player.buffer.Len(); got != want {
		t.Fatalf("buffer length = %d samples, want %d", got, want)
	}
}

func TestPlayBeforeResume(t *testing.T) {
	player, err := NewPlayer(Options{})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	player.playSpeaker = func(...beep.Streamer) {
		t.Fatal("speaker used before resume")
	}

	if err := player.Play(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Play error = %v, want ErrNotReady", err)
	}
}

func TestResumeRetriesAfterFailure(t *testing.T) {
	player, err := NewPlayer(Options{Volume: -1})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	initCalls := 0
	failure := errors.New("device busy")
	player.initSpeaker = func(rate beep.SampleRate, bufferSize int) error {
		initCalls++
		if rate != outputSampleRate || bufferSize != rate.N(outputBuffer) {
			t.Fatalf("init(%d, %d) unexpected", rate, bufferSize)
		}
		if initCalls == 1 {
			return failure
		}
		return nil
	}
	var played []beep.Streamer
	player.playSpeaker = func(streamers ...beep.Streamer) {
		played = append(played, streamers...)
	}

	if err := player.Resume(); !errors.Is(err, failure) {
		t.Fatalf("first Resume error = %v, want %v", err, failure)
	}
	if err := player.Resume(); err != nil {
		t.Fatalf("second Resume: %v", err)
	}
	if err := player.Resume(); err != nil {
		t.Fatalf("third Resume: %v", err)
	}
	if initCalls != 2 {
		t.Fatalf("initSpeaker calls = %d, want 2", initCalls)
	}

	if err := player.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := player.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(played) != 2 {
		t.Fatalf("played %d streamers, want 2", len(played))
	}
}

func TestNewPlayerRejectsUnknownFormat(t *testing.T) {
	_, err := NewPlayer(Options{File: filepath.Join(t.TempDir(), "chime.ogg")})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestNewPlayerMissingFile(t *testing.T) {
	_, err := NewPlayer(Options{File: filepath.Join(t.TempDir(), "missing.wav")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
}

func TestNewPlayerResamplesWavFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chime.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sourceFormat := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	if err := wav.Encode(file, Tone(sourceFormat.SampleRate, DefaultChime), sourceFormat); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	player, err := NewPlayer(Options{File: path})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	want := outputSampleRate.N(DefaultChime[1].Offset + DefaultChime[1].Length)
	got := player.buffer.Len()
	if diff := got - want; diff < -want/100 || diff > want/100 {
		t.Fatalf("resampled length = %d samples, want about %d", got, want)
	}
}
