package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer plays through the system audio device. Every sound goes
// into one mixer; the music loop sits behind a pausable control.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	closed bool
}

// NewSpeakerPlayer opens the speaker. volume scales every sound, 1 being the
// synthesized level. Callers usually fall back to Nop on error.
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	buf := Music()
	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
		music: &beep.Ctrl{
			Streamer: Volume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume),
			Paused:   true,
		},
	}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	return p, nil
}

func (p *SpeakerPlayer) setMusicPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

func (p *SpeakerPlayer) StartMusic() { p.setMusicPaused(false) }

func (p *SpeakerPlayer) StopMusic() { p.setMusicPaused(true) }

func (p *SpeakerPlayer) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(Volume(s, p.volume))
	speaker.Unlock()
}

func (p *SpeakerPlayer) LineClear(lines int) { p.play(LineClearCue(lines)) }

func (p *SpeakerPlayer) GameOver() { p.play(GameOverCue()) }

// Close silences everything and releases the device.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	speaker.Clear()
	speaker.Close()
	return nil
}
