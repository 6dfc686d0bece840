// Package audio plays the interval-completion chime through the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	// ErrNotReady is returned by Play before a successful Resume.
	ErrNotReady = errors.New("audio output not initialized")
	// ErrUnsupportedFormat indicates a chime file that is neither mp3 nor wav.
	ErrUnsupportedFormat = errors.New("unsupported chime format")
)

const (
	outputSampleRate = beep.SampleRate(44100)
	outputBuffer     = 100 * time.Millisecond
	resampleQuality  = 4
)

// Options configures a Player.
type Options struct {
	// File is an mp3 or wav chime. Empty selects DefaultChime.
	File string
	// Volume is a base-2 gain; 0 plays at the recorded level.
	Volume float64
}

// Player decodes the chime once and replays it from memory.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
	volume float64
	ready  bool

	initSpeaker func(beep.SampleRate, int) error
	playSpeaker func(...beep.Streamer)
}

// NewPlayer loads the chime described by options. The speaker is not opened
// until Resume.
func NewPlayer(options Options) (*Player, error) {
	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  outputSampleRate,
		NumChannels: 2,
		Precision:   2,
	})

	if options.File == "" {
		buffer.Append(Tone(outputSampleRate, DefaultChime))
	} else if err := appendFile(buffer, options.File); err != nil {
		return nil, err
	}

	return &Player{
		buffer:      buffer,
		volume:      options.Volume,
		initSpeaker: speaker.Init,
		playSpeaker: speaker.Play,
	}, nil
}

// Resume opens the speaker on first use. Later calls are no-ops.
func (player *Player) Resume() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.ready {
		return nil
	}

	rate := player.buffer.Format().SampleRate
	if err := player.initSpeaker(rate, rate.N(outputBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.ready = true
	return nil
}

// Play queues the chime on the speaker and returns immediately.
func (player *Player) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if !player.ready {
		return ErrNotReady
	}

	player.playSpeaker(&effects.Volume{
		Streamer: player.buffer.Streamer(0, player.buffer.Len()),
		Base:     2,
		Volume:   player.volume,
	})
	return nil
}

// Duration returns the chime length.
func (player *Player) Duration() time.Duration {
	return player.buffer.Format().SampleRate.D(player.buffer.Len())
}

func appendFile(buffer *beep.Buffer, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open chime file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if ext == ".mp3" {
		streamer, format, err = mp3.Decode(file)
	} else {
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("decode chime file: %w", err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	target := buffer.Format().SampleRate
	if format.SampleRate != target {
		source = beep.Resample(resampleQuality, format.SampleRate, target, streamer)
	}
	buffer.Append(source)

	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode chime file: %w", err)
	}
	return nil
}
