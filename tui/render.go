package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Canvas is the subset of tcell.Screen used for drawing.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// CellWidth is the number of terminal columns per board cell, which keeps
// blocks roughly square.
const CellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	valueStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func rgb(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// BlockStyle is the style of a filled cell of color c.
func BlockStyle(c tetris.Color) tcell.Style {
	return tcell.StyleDefault.Background(rgb(c)).Foreground(rgb(c))
}

// GhostStyle is the style of the landing preview for a piece of color c.
func GhostStyle(c tetris.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c))
}

// DrawText writes s starting at (x, y) and returns the column after it.
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// RenderSystem draws the board and the side panel every frame. The board's
// top-left inner corner sits at (Left, Top).
type RenderSystem struct {
	Canvas Canvas
	Left   int
	Top    int
}

// BoardOrigin returns the terminal position of board cell (0, 0).
func (s *RenderSystem) BoardOrigin() (x, y int) {
	return s.Left + 1, s.Top + 1
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	snap := frame.Engine.Snapshot()
	c := s.Canvas
	c.Clear()

	s.drawBoard(snap)
	s.drawPanel(snap)
	if !snap.Running {
		s.drawGameOver(snap)
	}

	c.Show()
}

func (s *RenderSystem) cell(col, row int, glyph [CellWidth]rune, style tcell.Style) {
	x0, y0 := s.BoardOrigin()
	for i, r := range glyph {
		s.Canvas.SetContent(x0+col*CellWidth+i, y0+row, r, nil, style)
	}
}

func (s *RenderSystem) drawBoard(snap tetris.Snapshot) {
	c := s.Canvas
	x0, y0 := s.BoardOrigin()
	right := x0 + snap.Width*CellWidth
	bottom := y0 + snap.Height

	for y := y0; y < bottom; y++ {
		c.SetContent(x0-1, y, '│', nil, borderStyle)
		c.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := x0; x < right; x++ {
		c.SetContent(x, bottom, '─', nil, borderStyle)
	}
	c.SetContent(x0-1, bottom, '└', nil, borderStyle)
	c.SetContent(right, bottom, '┘', nil, borderStyle)

	grid := snap.Composite()
	for row := range grid {
		for col, cell := range grid[row] {
			if cell.Filled {
				s.cell(col, row, [CellWidth]rune{' ', ' '}, BlockStyle(cell.Color))
			} else {
				s.cell(col, row, [CellWidth]rune{' ', '.'}, emptyStyle)
			}
		}
	}

	for _, pt := range snap.Ghost() {
		if !grid[pt.Row][pt.Col].Filled {
			s.cell(pt.Col, pt.Row, [CellWidth]rune{'[', ']'}, GhostStyle(snap.Piece.Color))
		}
	}
}

func (s *RenderSystem) drawPanel(snap tetris.Snapshot) {
	c := s.Canvas
	x0, y := s.BoardOrigin()
	x := x0 + snap.Width*CellWidth + 3

	for _, kv := range []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
		{"HIGH", snap.HighScore},
	} {
		DrawText(c, x, y, kv.label, labelStyle)
		DrawText(c, x, y+1, fmt.Sprintf("%d", kv.value), valueStyle)
		y += 3
	}

	DrawText(c, x, y, "NEXT", labelStyle)
	next := snap.Next.Shape()
	for pt := range next.Cells() {
		for i := range CellWidth {
			c.SetContent(x+pt.Col*CellWidth+i, y+1+pt.Row, ' ', nil, BlockStyle(snap.Next.Color()))
		}
	}
	y += 4

	DrawText(c, x, y+1, "←→ move  ↑ rotate", labelStyle)
	DrawText(c, x, y+2, "↓ drop  q quit", labelStyle)
}

func (s *RenderSystem) drawGameOver(snap tetris.Snapshot) {
	x0, y0 := s.BoardOrigin()
	width := snap.Width * CellWidth
	mid := y0 + snap.Height/2

	center := func(y int, text string, style tcell.Style) {
		x := x0 + (width-len([]rune(text)))/2
		DrawText(s.Canvas, max(x, x0), y, text, style)
	}
	center(mid-1, "GAME OVER", overStyle)
	center(mid+1, "r restart", valueStyle)
	center(mid+2, "q quit", valueStyle)
}
