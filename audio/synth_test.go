package audio_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ audio.Player = audio.Nop{}
var _ audio.Player = (*audio.SpeakerPlayer)(nil)

// frames returns the number of stereo frames in 16-bit PCM.
func frames(pcm []byte) int { return len(pcm) / 4 }

func sample(pcm []byte, frame int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[frame*4:]))
}

func TestTone(t *testing.T) {
	d := 100 * time.Millisecond
	pcm := audio.PCM16(audio.Tone(audio.NoteA4, d))

	if got, want := frames(pcm), audio.SampleRate.N(d); got != want {
		t.Fatalf("expected %d frames, got %d", want, got)
	}

	assert.Zero(t, sample(pcm, 0), "attack starts from silence")

	var peak int16
	for i := range frames(pcm) {
		left := sample(pcm, i)
		right := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		assert.Equal(t, left, right, "mono tone on both channels")
		peak = max(peak, left)
	}
	assert.Greater(t, peak, int16(30000), "sustain reaches full scale")
}

func TestToneSilence(t *testing.T) {
	pcm := audio.PCM16(audio.Tone(audio.Rest, 20*time.Millisecond))
	require.Equal(t, audio.SampleRate.N(20*time.Millisecond), frames(pcm))
	for _, b := range pcm {
		if b != 0 {
			t.Fatal("rest should be silent")
		}
	}
}

func TestCueLengths(t *testing.T) {
	note := audio.SampleRate.N(60 * time.Millisecond)
	tests := []struct {
		lines int
		notes int
	}{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {0, 1}, {9, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.notes*note, frames(audio.PCM16(audio.LineClearCue(tt.lines))), "%d lines", tt.lines)
	}

	assert.Equal(t, 4*audio.SampleRate.N(180*time.Millisecond), frames(audio.PCM16(audio.GameOverCue())))
}

func TestMusic(t *testing.T) {
	buf := audio.Music()
	assert.Equal(t, 24*audio.SampleRate.N(150*time.Millisecond), buf.Len())
	assert.Equal(t, audio.SampleRate, buf.Format().SampleRate)
}

func constant(v float64, n int) beep.Streamer {
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, -v}
		}
		return len(samples), true
	}))
}

func TestVolume(t *testing.T) {
	muted := audio.PCM16(audio.Volume(constant(0.5, 10), 0))
	require.Equal(t, 10, frames(muted))
	assert.Zero(t, sample(muted, 3))

	same := audio.PCM16(audio.Volume(constant(0.5, 10), 1))
	assert.Equal(t, int16(16384), sample(same, 3))

	half := audio.PCM16(audio.Volume(constant(0.5, 10), 0.5))
	assert.Equal(t, int16(8192), sample(half, 3))
}

func TestPCM16(t *testing.T) {
	pcm := audio.PCM16(beep.Seq(constant(1, 1), constant(-1, 1), constant(2, 1)))
	require.Len(t, pcm, 12)

	assert.Equal(t, int16(32767), sample(pcm, 0))
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(pcm[2:])))
	assert.Equal(t, int16(-32767), sample(pcm, 1))
	assert.Equal(t, int16(32767), sample(pcm, 2), "clipped")
}
