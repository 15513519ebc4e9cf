package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	margin     = 40
	panelWidth = 160
)

var (
	background = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	frameColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	gridColor  = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	shadeColor = color.RGBA{A: 170}
)

// Renderer draws a snapshot onto an ebiten image.
type Renderer struct {
	CellSize int
	sprites  *Sprites
}

// NewRenderer creates a renderer with cellSize pixel blocks.
func NewRenderer(cellSize int) *Renderer {
	return &Renderer{CellSize: cellSize, sprites: NewSprites(cellSize)}
}

// Size returns the logical screen size for a width x height board.
func (r *Renderer) Size(width, height int) (int, int) {
	return 2*margin + width*r.CellSize + panelWidth, 2*margin + height*r.CellSize
}

// Board returns the pixel rectangle of the board on screen.
func (r *Renderer) Board(width, height int) image.Rectangle {
	return image.Rect(margin, margin, margin+width*r.CellSize, margin+height*r.CellSize)
}

// CellAt returns the top-left pixel of a board cell.
func (r *Renderer) CellAt(row, col int) image.Point {
	return image.Pt(margin+col*r.CellSize, margin+row*r.CellSize)
}

func (r *Renderer) Draw(screen *ebiten.Image, s tetris.Snapshot) {
	screen.Fill(background)
	r.drawBoard(screen, s)
	r.drawPanel(screen, s)
	if !s.Running {
		r.drawGameOver(screen, s)
	}
}

func (r *Renderer) blit(screen, img *ebiten.Image, at image.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	screen.DrawImage(img, op)
}

func (r *Renderer) drawBoard(screen *ebiten.Image, s tetris.Snapshot) {
	rect := r.Board(s.Width, s.Height)
	cs := float32(r.CellSize)

	for row := range s.Height {
		for col := range s.Width {
			at := r.CellAt(row, col)
			vector.StrokeRect(screen, float32(at.X), float32(at.Y), cs, cs, 1, gridColor, false)
		}
	}
	vector.StrokeRect(screen, float32(rect.Min.X-2), float32(rect.Min.Y-2),
		float32(rect.Dx()+4), float32(rect.Dy()+4), 2, frameColor, false)

	if s.HasPiece {
		for _, pt := range s.Ghost() {
			if pt.Row >= 0 && pt.Row < s.Height {
				r.blit(screen, r.sprites.Ghost(s.Piece.Color), r.CellAt(pt.Row, pt.Col))
			}
		}
	}

	for row, cells := range s.Composite() {
		for col, cell := range cells {
			if cell.Filled {
				r.blit(screen, r.sprites.Block(cell.Color), r.CellAt(row, col))
			}
		}
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s tetris.Snapshot) {
	x := margin + s.Width*r.CellSize + 20
	y := margin

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"LEVEL", s.Level},
		{"LINES", s.Lines},
		{"HIGH", s.HighScore},
	}
	for _, st := range stats {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n%d", st.label, st.value), x, y)
		y += 40
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	y += 20
	if s.Next.Valid() {
		for pt := range s.Next.Shape().Cells() {
			r.blit(screen, r.sprites.Block(s.Next.Color()), image.Pt(x+pt.Col*r.CellSize, y+pt.Row*r.CellSize))
		}
	}
	y += 3 * r.CellSize

	ebitenutil.DebugPrintAt(screen, "arrows  move\nup      rotate\nR       restart\nEsc     quit", x, y)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, s tetris.Snapshot) {
	rect := r.Board(s.Width, s.Height)
	mid := rect.Min.Y + rect.Dy()/2
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(mid-40), float32(rect.Dx()), 90, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", rect.Min.X+20, mid-30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", s.Score), rect.Min.X+20, mid-10)
	ebitenutil.DebugPrintAt(screen, "R to restart, Esc to quit", rect.Min.X+20, mid+20)
}
