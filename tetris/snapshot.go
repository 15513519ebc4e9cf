package tetris

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Cell

	Piece    Piece
	HasPiece bool
	GhostRow int
	Next     Kind

	Score        int
	Level        int
	Lines        int
	HighScore    int
	DropInterval time.Duration
	State        State
	Running      bool
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:        e.board.Width(),
		Height:       e.board.Height(),
		Cells:        e.board.Rows(),
		GhostRow:     e.GhostRow(),
		Next:         e.next,
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		HighScore:    e.highScore,
		DropInterval: e.dropInterval,
		State:        e.state,
		Running:      e.running,
	}
	s.Piece, s.HasPiece = e.Piece()
	return s
}

// Composite returns the locked cells with the active piece drawn on top.
func (s Snapshot) Composite() [][]Cell {
	out := make([][]Cell, len(s.Cells))
	for r, row := range s.Cells {
		out[r] = append([]Cell(nil), row...)
	}
	if !s.HasPiece {
		return out
	}
	for pt := range s.Piece.Cells() {
		if pt.Row >= 0 && pt.Row < s.Height && pt.Col >= 0 && pt.Col < s.Width {
			out[pt.Row][pt.Col] = Cell{Color: s.Piece.Color, Filled: true}
		}
	}
	return out
}

// Ghost returns the board cells the active piece would occupy after a full
// drop. It is empty without an active piece.
func (s Snapshot) Ghost() []Point {
	if !s.HasPiece || s.GhostRow < 0 {
		return nil
	}
	var pts []Point
	for off := range s.Piece.Shape.Cells() {
		pts = append(pts, Point{Row: s.GhostRow + off.Row, Col: s.Piece.Pos.Col + off.Col})
	}
	return pts
}
