package loop

import (
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/tetris"
)

// AudioSystem turns engine events into sound. Cues are deferred to the end
// of the frame so they start after every system has run.
type AudioSystem struct {
	Player audio.Player

	playing bool
}

func (s *AudioSystem) Execute(frame *Frame) {
	if !s.playing && frame.Engine.Running() {
		s.playing = true
		frame.Commands.Defer(s.Player.StartMusic)
	}

	for _, ev := range frame.Events {
		switch ev.Type {
		case tetris.EventLinesCleared:
			lines := ev.Lines
			frame.Commands.Defer(func() { s.Player.LineClear(lines) })
		case tetris.EventGameOver:
			s.playing = false
			frame.Commands.Defer(s.Player.StopMusic)
			frame.Commands.Defer(s.Player.GameOver)
		}
	}
}
