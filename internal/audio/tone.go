package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Note is one partial of the synthesized chime.
type Note struct {
	Frequency float64
	Offset    time.Duration
	Length    time.Duration
}

// DefaultChime is a two-note bell, a fifth apart.
var DefaultChime = []Note{
	{Frequency: 880, Offset: 0, Length: 900 * time.Millisecond},
	{Frequency: 1318.5, Offset: 180 * time.Millisecond, Length: 1100 * time.Millisecond},
}

const decayRate = 5.0

// Tone returns a finite streamer that mixes notes with an exponential decay.
func Tone(sampleRate beep.SampleRate, notes []Note) beep.Streamer {
	var total time.Duration
	for _, note := range notes {
		if end := note.Offset + note.Length; end > total {
			total = end
		}
	}
	length := sampleRate.N(total)
	rate := float64(sampleRate)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= length {
			return 0, false
		}
		n := 0
		for n < len(samples) && position < length {
			t := float64(position) / rate
			value := 0.0
			for _, note := range notes {
				local := t - note.Offset.Seconds()
				if local < 0 || local >= note.Length.Seconds() {
					continue
				}
				value += math.Sin(2*math.Pi*note.Frequency*local) * math.Exp(-decayRate*local)
			}
			value /= float64(len(notes))
			samples[n][0] = value
			samples[n][1] = value
			n++
			position++
		}
		return n, true
	})
}
