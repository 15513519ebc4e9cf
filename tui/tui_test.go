package tui_test

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	return screen
}

func newEngine(t *testing.T) *tetris.Engine {
	t.Helper()
	e, err := tetris.NewEngine(tetris.DefaultConfig(),
		tetris.WithRandomizer(tetris.NewSequence(tetris.KindO, tetris.KindT)),
		tetris.WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)
	e.Start()
	return e
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	var rows []string
	for y := range h {
		rows = append(rows, row(screen, y))
	}
	return strings.Join(rows, "\n")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want loop.Input
	}{
		{tcell.KeyLeft, 0, loop.Input{Command: tetris.CommandMoveLeft}},
		{tcell.KeyRune, 'h', loop.Input{Command: tetris.CommandMoveLeft}},
		{tcell.KeyRune, 'l', loop.Input{Command: tetris.CommandMoveRight}},
		{tcell.KeyRune, 'j', loop.Input{Command: tetris.CommandSoftDrop}},
		{tcell.KeyUp, 0, loop.Input{Command: tetris.CommandRotate}},
		{tcell.KeyRune, 'k', loop.Input{Command: tetris.CommandRotate}},
		{tcell.KeyRune, 'r', loop.Input{Restart: true}},
		{tcell.KeyEscape, 0, loop.Input{Quit: true}},
		{tcell.KeyCtrlC, 0, loop.Input{Quit: true}},
	}

	for _, tt := range tests {
		got, ok := tui.Decode(tui.Keybindings, tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
		assert.True(t, ok, "%v %q", tt.key, tt.r)
		assert.Equal(t, tt.want, got, "%v %q", tt.key, tt.r)
	}

	_, ok := tui.Decode(tui.Keybindings, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	assert.False(t, ok)
	_, ok = tui.Decode(tui.Keybindings, tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestKeyboard(t *testing.T) {
	screen := newScreen(t)
	resized := 0

	kb := tui.NewKeyboard(screen)
	kb.OnResize = func() { resized++ }

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var inputs []loop.Input
	require.Eventually(t, func() bool {
		inputs = append(inputs, kb.Poll()...)
		return len(inputs) >= 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []loop.Input{
		{Command: tetris.CommandMoveLeft},
		{Quit: true},
	}, inputs)
	assert.Empty(t, kb.Poll(), "nothing left to drain")

	require.NoError(t, screen.PostEvent(tcell.NewEventResize(100, 40)))
	assert.Eventually(t, func() bool {
		kb.Poll()
		return resized > 0
	}, time.Second, 5*time.Millisecond)

	screen.Fini()
	assert.NotPanics(t, func() { kb.Poll() })
}

func TestRenderSystem(t *testing.T) {
	screen := newScreen(t)
	e := newEngine(t)
	render := &tui.RenderSystem{Canvas: screen}

	scheduler := loop.NewScheduler(e)
	scheduler.Register(render)
	scheduler.Once(time.Millisecond)

	x0, y0 := render.BoardOrigin()
	require.Equal(t, 1, x0)
	require.Equal(t, 1, y0)

	// The O piece spawns at columns 4-5, two terminal columns per cell.
	for _, pt := range []tetris.Point{{Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 1, Col: 4}} {
		for i := range tui.CellWidth {
			_, _, style, _ := screen.GetContent(x0+pt.Col*tui.CellWidth+i, y0+pt.Row)
			_, bg, _ := style.Decompose()
			assert.Equal(t, tcell.NewRGBColor(255, 255, 0), bg, "%v", pt)
		}
	}

	// Ghost at the bottom rows.
	r, _, _, _ := screen.GetContent(x0+4*tui.CellWidth, y0+19)
	assert.Equal(t, '[', r)

	// Empty cell and border.
	r, _, _, _ = screen.GetContent(x0+1, y0+5)
	assert.Equal(t, '.', r)
	r, _, _, _ = screen.GetContent(x0-1, y0+5)
	assert.Equal(t, '│', r)
	r, _, _, _ = screen.GetContent(x0+20, y0+20)
	assert.Equal(t, '┘', r)

	text := screenText(screen)
	assert.Contains(t, text, "SCORE")
	assert.Contains(t, text, "NEXT")
	assert.NotContains(t, text, "GAME OVER")

	e.Quit()
	scheduler.Once(time.Millisecond)
	assert.Contains(t, screenText(screen), "GAME OVER")
}

func TestDrawText(t *testing.T) {
	screen := newScreen(t)
	end := tui.DrawText(screen, 3, 2, "héllo", tcell.StyleDefault)
	assert.Equal(t, 8, end)
	assert.Equal(t, "héllo", strings.TrimSpace(row(screen, 2)))
}
