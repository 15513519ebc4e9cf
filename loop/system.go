// Package loop drives a tetris.Engine with an ordered list of systems, one
// frame at a time.
package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what every system sees during one scheduler pass.
type Frame struct {
	DeltaTime time.Duration
	Engine    *tetris.Engine
	// Events collects everything the engine reported during this frame, in
	// order. Later systems react to what earlier systems produced.
	Events   []tetris.Event
	Commands *Commands
}

func newFrame(dt time.Duration, engine *tetris.Engine) *Frame {
	return &Frame{
		DeltaTime: dt,
		Engine:    engine,
		Commands:  newCommands(),
	}
}

// Emit records engine events for the systems that run after the caller.
func (f *Frame) Emit(events ...tetris.Event) {
	f.Events = append(f.Events, events...)
}

// Has reports whether an event of type t was emitted this frame.
func (f *Frame) Has(t tetris.EventType) bool {
	for _, ev := range f.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
