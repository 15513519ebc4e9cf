package loop

import "github.com/plus3/blockfall/tetris"

// Input is one decoded key press from a frontend.
type Input struct {
	Command tetris.Command
	Quit    bool
	Restart bool
}

// InputSource is implemented by frontends. Poll returns the inputs gathered
// since the previous call and must not block.
type InputSource interface {
	Poll() []Input
}

// Script is an InputSource that replays fixed batches, one per frame.
type Script [][]Input

// Poll pops the next batch.
func (s *Script) Poll() []Input {
	if len(*s) == 0 {
		return nil
	}
	batch := (*s)[0]
	*s = (*s)[1:]
	return batch
}

// InputSystem applies player input to the engine. Quit ends a running game;
// once the game is over a second quit stops the loop. Restart only applies
// to a finished game.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	e := frame.Engine
	for _, in := range s.Source.Poll() {
		switch {
		case in.Quit:
			if e.Running() {
				frame.Emit(e.Quit()...)
			} else {
				frame.Commands.Stop()
			}
		case in.Restart:
			if !e.Running() {
				frame.Emit(e.Reset()...)
			}
		case in.Command != tetris.CommandNone:
			frame.Emit(e.Apply(in.Command)...)
		}
	}
}
