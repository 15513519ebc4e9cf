package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// MaxShapeSize is the side of the fixed array backing every Shape.
const MaxShapeSize = 4

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Packed returns the color as 0xRRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Point is a (row, col) offset. Rows grow downward.
type Point struct {
	Row, Col int
}

// Shape is an occupancy matrix stored in a fixed 4x4 array. Rows and Cols
// hold the live bounding box; cells outside it are always false.
type Shape struct {
	rows, cols int
	cells      [MaxShapeSize][MaxShapeSize]bool
}

// ParseShape builds a shape from rows of 'X' (filled) and '.' (empty).
func ParseShape(rows ...string) (Shape, error) {
	var s Shape
	if len(rows) == 0 || len(rows) > MaxShapeSize {
		return s, fmt.Errorf("shape must have 1..%d rows, got %d", MaxShapeSize, len(rows))
	}

	s.rows = len(rows)
	s.cols = len(rows[0])
	if s.cols == 0 || s.cols > MaxShapeSize {
		return s, fmt.Errorf("shape must have 1..%d cols, got %d", MaxShapeSize, s.cols)
	}

	for r, row := range rows {
		if len(row) != s.cols {
			return s, fmt.Errorf("shape row %d has %d cols, want %d", r, len(row), s.cols)
		}
		for c, ch := range row {
			switch ch {
			case 'X':
				s.cells[r][c] = true
			case '.':
			default:
				return s, fmt.Errorf("shape row %d: unexpected %q", r, ch)
			}
		}
	}

	return s, nil
}

func mustShape(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rows returns the bounding box height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the bounding box width.
func (s Shape) Cols() int { return s.cols }

// Filled reports whether the cell at (r, c) inside the bounding box is occupied.
func (s Shape) Filled(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r][c]
}

// Cells yields the offsets of all occupied cells, row-major.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := range s.rows {
			for c := range s.cols {
				if s.cells[r][c] && !yield(Point{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Rotate returns the shape turned 90 degrees clockwise: the transpose of the
// row-reversed matrix. The bounding box swaps to cols x rows and stays
// anchored at the top-left origin.
func (s Shape) Rotate() Shape {
	out := Shape{rows: s.cols, cols: s.rows}
	for r := range out.rows {
		for c := range out.cols {
			out.cells[r][c] = s.cells[s.rows-1-c][r]
		}
	}
	return out
}

func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := range s.cols {
			if s.cells[r][c] {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

var kindShapes = [KindCount]Shape{
	KindI: mustShape("XXXX"),
	KindJ: mustShape("X..", "XXX"),
	KindL: mustShape("..X", "XXX"),
	KindO: mustShape("XX", "XX"),
	KindS: mustShape(".XX", "XX."),
	KindT: mustShape(".X.", "XXX"),
	KindZ: mustShape("XX.", ".XX"),
}

var kindColors = [KindCount]Color{
	KindI: {0, 255, 255},
	KindJ: {0, 0, 255},
	KindL: {255, 165, 0},
	KindO: {255, 255, 0},
	KindS: {0, 255, 0},
	KindT: {128, 0, 128},
	KindZ: {255, 0, 0},
}

// Kinds returns all kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Shape returns the spawn orientation of the kind.
func (k Kind) Shape() Shape {
	return kindShapes[k]
}

// Color returns the color paired with the kind.
func (k Kind) Color() Color {
	return kindColors[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	Pos   Point
}

// NewPiece returns the kind's canonical piece at the origin.
func NewPiece(kind Kind) *Piece {
	return &Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		Color: kind.Color(),
	}
}

// Cells yields the board coordinates covered by the piece.
func (p *Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for off := range p.Shape.Cells() {
			if !yield(Point{Row: p.Pos.Row + off.Row, Col: p.Pos.Col + off.Col}) {
				return
			}
		}
	}
}
