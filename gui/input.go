// Package gui is the desktop frontend, drawn with ebiten.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Binding maps a set of keys to one input. Repeat bindings fire again while
// the key is held.
type Binding struct {
	Keys   []ebiten.Key
	Input  loop.Input
	Repeat bool
}

// Bindings is the default desktop layout.
var Bindings = []Binding{
	{Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, Input: loop.Input{Command: tetris.CommandMoveLeft}, Repeat: true},
	{Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, Input: loop.Input{Command: tetris.CommandMoveRight}, Repeat: true},
	{Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, Input: loop.Input{Command: tetris.CommandSoftDrop}, Repeat: true},
	{Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyX, ebiten.KeyZ}, Input: loop.Input{Command: tetris.CommandRotate}},
	{Keys: []ebiten.Key{ebiten.KeyR}, Input: loop.Input{Restart: true}},
	{Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, Input: loop.Input{Quit: true}},
}

// Repeater decides on which ticks a held key fires: once on the first tick,
// then every Rate ticks starting Delay ticks after the press.
type Repeater struct {
	Delay int
	Rate  int
}

// DefaultRepeater matches 200ms delay and 50ms rate at 60 ticks per second.
var DefaultRepeater = Repeater{Delay: 12, Rate: 3}

// Fire reports whether a key held for ticks ticks fires on this tick.
func (r Repeater) Fire(ticks int) bool {
	switch {
	case ticks == 1:
		return true
	case ticks < r.Delay || r.Rate <= 0:
		return false
	default:
		return (ticks-r.Delay)%r.Rate == 0
	}
}

// Keyboard is a loop.InputSource reading ebiten's key state. Poll must be
// called from ebiten's Update.
type Keyboard struct {
	Bindings []Binding
	Repeater Repeater

	pressDuration func(ebiten.Key) int
}

// NewKeyboard returns a keyboard with the default bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings:      Bindings,
		Repeater:      DefaultRepeater,
		pressDuration: inpututil.KeyPressDuration,
	}
}

func (k *Keyboard) Poll() []loop.Input {
	var inputs []loop.Input
	for _, b := range k.Bindings {
		held := 0
		for _, key := range b.Keys {
			held = max(held, k.pressDuration(key))
		}
		if held == 0 {
			continue
		}
		if held == 1 || (b.Repeat && k.Repeater.Fire(held)) {
			inputs = append(inputs, b.Input)
		}
	}
	return inputs
}
