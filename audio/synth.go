// Package audio synthesizes the game's sound effects and background music
// and plays them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate is used for every generated sound.
	SampleRate = beep.SampleRate(44100)

	noteAttack  = 5 * time.Millisecond
	noteRelease = 40 * time.Millisecond
)

// Format describes the generated audio: stereo, 16-bit.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Note frequencies in Hz, equal temperament around A4 = 440.
const (
	NoteE4 = 329.63
	NoteG4 = 392.00
	NoteA4 = 440.00
	NoteB4 = 493.88
	NoteC5 = 523.25
	NoteD5 = 587.33
	NoteE5 = 659.25
	NoteG5 = 783.99
	NoteA5 = 880.00
)

// Rest is a silent note in a melody.
const Rest = 0.0

// Tone returns a finite sine tone of duration d shaped by a short attack and
// release so consecutive notes do not click. A zero frequency yields silence.
func Tone(freq float64, d time.Duration) beep.Streamer {
	n := SampleRate.N(d)
	if freq <= 0 {
		return beep.Silence(n)
	}

	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		// Only frequencies at or above Nyquist fail.
		return beep.Silence(n)
	}
	return newEnvelope(beep.Take(n, sine), n, SampleRate.N(noteAttack), SampleRate.N(noteRelease))
}

// envelope applies a linear attack/release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		attack, release = total/2, total/2
	}
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Volume scales s linearly; v <= 0 mutes it.
func Volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Melody plays the notes back to back, each lasting step.
func Melody(step time.Duration, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = Tone(f, step)
	}
	return beep.Seq(parts...)
}

// LineClearCue is a rising arpeggio with one note per cleared line.
func LineClearCue(lines int) beep.Streamer {
	scale := []float64{NoteC5, NoteE5, NoteG5, NoteA5}
	lines = min(max(lines, 1), len(scale))
	return Volume(Melody(60*time.Millisecond, scale[:lines]...), 0.5)
}

// GameOverCue is a short falling phrase.
func GameOverCue() beep.Streamer {
	return Volume(Melody(180*time.Millisecond, NoteG4, NoteE4, Rest, NoteE4/2), 0.6)
}

// theme is a simple loopable melody, one entry per eighth note.
var theme = []float64{
	NoteE5, NoteB4, NoteC5, NoteD5, NoteC5, NoteB4, NoteA4, NoteA4,
	NoteC5, NoteE5, NoteD5, NoteC5, NoteB4, NoteB4, NoteC5, NoteD5,
	NoteE5, NoteE5, NoteC5, NoteC5, NoteA4, NoteA4, Rest, Rest,
}

// Music renders the background theme into a buffer that can be looped
// without re-synthesizing it.
func Music() *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(Volume(Melody(150*time.Millisecond, theme...), 0.25))
	return buf
}
