package gui

import (
	"bytes"
	"fmt"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/blockfall/audio"
)

// SoundPlayer is an audio.Player on ebiten's audio context. It shares the
// device with the game window, so it is the player to use with the GUI.
type SoundPlayer struct {
	ctx    *eaudio.Context
	music  *eaudio.Player
	volume float64

	lineClear [4][]byte
	gameOver  []byte
}

// NewSoundPlayer renders the cues to PCM and prepares the music loop.
func NewSoundPlayer(volume float64) (*SoundPlayer, error) {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(int(audio.SampleRate))
	}

	buf := audio.Music()
	music := audio.PCM16(buf.Streamer(0, buf.Len()))
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	mp, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("audio: music player: %w", err)
	}
	mp.SetVolume(volume)

	p := &SoundPlayer{
		ctx:      ctx,
		music:    mp,
		volume:   volume,
		gameOver: audio.PCM16(audio.GameOverCue()),
	}
	for i := range p.lineClear {
		p.lineClear[i] = audio.PCM16(audio.LineClearCue(i + 1))
	}
	return p, nil
}

func (p *SoundPlayer) StartMusic() {
	if p.music.IsPlaying() {
		return
	}
	_ = p.music.Rewind()
	p.music.Play()
}

func (p *SoundPlayer) StopMusic() {
	p.music.Pause()
}

func (p *SoundPlayer) LineClear(lines int) {
	p.play(p.lineClear[min(max(lines, 1), len(p.lineClear))-1])
}

func (p *SoundPlayer) GameOver() {
	p.play(p.gameOver)
}

func (p *SoundPlayer) play(pcm []byte) {
	sp := p.ctx.NewPlayerFromBytes(pcm)
	sp.SetVolume(p.volume)
	sp.Play()
}

func (p *SoundPlayer) Close() error {
	return p.music.Close()
}
