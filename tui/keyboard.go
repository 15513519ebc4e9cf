package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
)

// EventSource is the part of tcell.Screen the keyboard reads from.
type EventSource interface {
	PollEvent() tcell.Event
}

// Keyboard is a loop.InputSource fed by a goroutine blocked in PollEvent.
// Events cross to the loop goroutine through a buffered channel and are
// decoded there.
type Keyboard struct {
	Bindings []Keybinding
	// OnResize runs on the loop goroutine when the terminal changes size.
	OnResize func()

	events chan tcell.Event
}

// NewKeyboard starts reading src. The reader exits once PollEvent returns
// nil, which tcell does after Fini.
func NewKeyboard(src EventSource) *Keyboard {
	k := &Keyboard{
		Bindings: Keybindings,
		events:   make(chan tcell.Event, 100),
	}
	go func() {
		defer close(k.events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			k.events <- ev
		}
	}()
	return k
}

// Poll drains pending events without blocking.
func (k *Keyboard) Poll() []loop.Input {
	var inputs []loop.Input
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return inputs
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in, ok := Decode(k.Bindings, ev); ok {
					inputs = append(inputs, in)
				}
			case *tcell.EventResize:
				if k.OnResize != nil {
					k.OnResize()
				}
			}
		default:
			return inputs
		}
	}
}
