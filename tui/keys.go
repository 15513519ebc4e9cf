// Package tui is the terminal frontend, drawn with tcell.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Keybinding maps a key, or a rune when Key is tcell.KeyRune, to an input.
type Keybinding struct {
	Key   tcell.Key
	Rune  rune
	Input loop.Input
}

// Keybindings is the default table: arrows, vi keys and a few aliases.
var Keybindings = []Keybinding{
	{Key: tcell.KeyLeft, Input: loop.Input{Command: tetris.CommandMoveLeft}},
	{Key: tcell.KeyRune, Rune: 'h', Input: loop.Input{Command: tetris.CommandMoveLeft}},
	{Key: tcell.KeyRune, Rune: 'H', Input: loop.Input{Command: tetris.CommandMoveLeft}},
	{Key: tcell.KeyRight, Input: loop.Input{Command: tetris.CommandMoveRight}},
	{Key: tcell.KeyRune, Rune: 'l', Input: loop.Input{Command: tetris.CommandMoveRight}},
	{Key: tcell.KeyRune, Rune: 'L', Input: loop.Input{Command: tetris.CommandMoveRight}},
	{Key: tcell.KeyDown, Input: loop.Input{Command: tetris.CommandSoftDrop}},
	{Key: tcell.KeyRune, Rune: 'j', Input: loop.Input{Command: tetris.CommandSoftDrop}},
	{Key: tcell.KeyRune, Rune: 'J', Input: loop.Input{Command: tetris.CommandSoftDrop}},
	{Key: tcell.KeyUp, Input: loop.Input{Command: tetris.CommandRotate}},
	{Key: tcell.KeyRune, Rune: 'k', Input: loop.Input{Command: tetris.CommandRotate}},
	{Key: tcell.KeyRune, Rune: 'K', Input: loop.Input{Command: tetris.CommandRotate}},
	{Key: tcell.KeyRune, Rune: 'x', Input: loop.Input{Command: tetris.CommandRotate}},
	{Key: tcell.KeyRune, Rune: 'z', Input: loop.Input{Command: tetris.CommandRotate}},
	{Key: tcell.KeyRune, Rune: 'r', Input: loop.Input{Restart: true}},
	{Key: tcell.KeyRune, Rune: 'R', Input: loop.Input{Restart: true}},
	{Key: tcell.KeyRune, Rune: 'q', Input: loop.Input{Quit: true}},
	{Key: tcell.KeyRune, Rune: 'Q', Input: loop.Input{Quit: true}},
	{Key: tcell.KeyEscape, Input: loop.Input{Quit: true}},
	{Key: tcell.KeyCtrlC, Input: loop.Input{Quit: true}},
}

// Decode looks ev up in bindings.
func Decode(bindings []Keybinding, ev *tcell.EventKey) (loop.Input, bool) {
	for _, b := range bindings {
		if b.Key != ev.Key() {
			continue
		}
		if b.Key == tcell.KeyRune && b.Rune != ev.Rune() {
			continue
		}
		return b.Input, true
	}
	return loop.Input{}, false
}
