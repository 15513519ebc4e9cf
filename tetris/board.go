package tetris

import "fmt"

// Cell is one grid square. The zero Cell is empty.
type Cell struct {
	Color  Color
	Filled bool
}

// Board is the fixed-size grid of locked cells, indexed [row][col] with row 0
// at the top.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for r := range b.cells {
		b.cells[r] = make([]Cell, width)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// IsOccupied reports whether a block may not be placed at (row, col): the
// column is outside [0, width), the row is below the floor, or the cell is
// filled. Rows above the top are never produced by the engine and also
// report true.
func (b *Board) IsOccupied(row, col int) bool {
	if !b.inside(row, col) {
		return true
	}
	return b.cells[row][col].Filled
}

// Collides reports whether shape placed with its origin at `at` overlaps a
// wall, the floor or a filled cell.
func (b *Board) Collides(shape Shape, at Point) bool {
	for off := range shape.Cells() {
		if b.IsOccupied(at.Row+off.Row, at.Col+off.Col) {
			return true
		}
	}
	return false
}

// Cell returns the cell at (row, col); out of range yields an empty cell.
func (b *Board) Cell(row, col int) Cell {
	if !b.inside(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

// Fill locks a block of the given color at (row, col).
func (b *Board) Fill(row, col int, color Color) {
	if !b.inside(row, col) {
		return
	}
	b.cells[row][col] = Cell{Color: color, Filled: true}
}

// Clear empties the cell at (row, col).
func (b *Board) Clear(row, col int) {
	if !b.inside(row, col) {
		return
	}
	b.cells[row][col] = Cell{}
}

// Merge locks every occupied cell of the piece into the board. The caller
// guarantees the piece does not collide.
func (b *Board) Merge(p *Piece) {
	for pt := range p.Cells() {
		b.Fill(pt.Row, pt.Col, p.Color)
	}
}

// RowCount returns the number of filled cells in a row.
func (b *Board) RowCount(row int) int {
	if row < 0 || row >= b.height {
		return 0
	}
	n := 0
	for _, c := range b.cells[row] {
		if c.Filled {
			n++
		}
	}
	return n
}

func (b *Board) rowFull(row int) bool {
	return b.RowCount(row) == b.width
}

// ClearFullLines removes every full row, shifts the rows above down and
// inserts one empty row at the top per removed row. Relative order of the
// remaining rows is preserved. Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		b.cells[write] = b.cells[read]
		write--
	}

	cleared := write + 1
	for ; write >= 0; write-- {
		b.cells[write] = make([]Cell, b.width)
	}
	return cleared
}

// AddGarbage fills the bottom `rows` rows with gray blocks, leaving one hole
// per row at the column returned by hole. Rows above are left untouched.
func (b *Board) AddGarbage(rows int, hole func() int) {
	rows = min(rows, b.height)
	for r := b.height - rows; r < b.height; r++ {
		h := hole()
		for c := range b.width {
			if c == h {
				b.cells[r][c] = Cell{}
				continue
			}
			b.cells[r][c] = Cell{Color: GarbageColor, Filled: true}
		}
	}
}

// GarbageColor is the color of pre-filled practice rows.
var GarbageColor = Color{R: 128, G: 128, B: 128}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for r, row := range b.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// String renders the board as rows of '#' and '.', for tests and logs.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for _, row := range b.cells {
		for _, c := range row {
			if c.Filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
