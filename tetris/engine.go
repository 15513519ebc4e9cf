package tetris

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

// State is the engine's position in the spawn/fall/lock cycle.
type State int

const (
	// StateSpawning: no active piece; the next one is about to appear.
	StateSpawning State = iota
	// StateFalling: a piece is under player control.
	StateFalling
	// StateLocking: the piece landed and is being merged. Only observable
	// from inside a drop.
	StateLocking
	// StateGameOver is terminal until Reset.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateFalling:
		return "Falling"
	case StateLocking:
		return "Locking"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRandomizer replaces the default uniform randomizer.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) { e.randomizer = r }
}

// WithHighScoreStore loads the high score at construction and saves a new
// one when a session ends.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithGarbage pre-fills the bottom rows with one-hole garbage on every reset.
func WithGarbage(rows int) Option {
	return func(e *Engine) { e.garbage = rows }
}

// Engine owns the board, the active piece and the scoring state. It is not
// safe for concurrent use; a single control loop drives it.
type Engine struct {
	cfg        Config
	board      *Board
	piece      *Piece
	next       Kind
	randomizer Randomizer
	store      HighScoreStore
	logger     *log.Logger
	garbage    int
	holeRng    *rand.Rand

	state        State
	running      bool
	score        int
	level        int
	lines        int
	pieces       int
	dropInterval time.Duration
	highScore    int
}

// NewEngine validates cfg and prepares a game. Call Start to spawn the first
// piece.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.garbage < 0 || e.garbage >= cfg.Height {
		return nil, fmt.Errorf("%w: garbage rows must be in [0,%d), got %d", ErrInvalidConfig, cfg.Height, e.garbage)
	}
	if e.randomizer == nil {
		e.randomizer = NewUniform(rand.Uint64())
	}
	e.holeRng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	if e.store != nil {
		high, err := e.store.Load()
		if err != nil {
			e.logger.Printf("warning: high score unavailable, starting from 0: %v", err)
			high = 0
		}
		e.highScore = max(high, 0)
	}

	if err := e.resetState(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) resetState() error {
	board, err := NewBoard(e.cfg.Width, e.cfg.Height)
	if err != nil {
		return err
	}
	if e.garbage > 0 {
		board.AddGarbage(e.garbage, func() int { return e.holeRng.IntN(e.cfg.Width) })
	}

	e.board = board
	e.piece = nil
	e.state = StateSpawning
	e.running = true
	e.score = 0
	e.level = 1
	e.lines = 0
	e.pieces = 0
	e.dropInterval = e.cfg.InitialDropInterval
	e.next = e.randomizer.Next()
	return nil
}

// Start spawns the first piece. It is a no-op unless the engine is waiting
// to spawn.
func (e *Engine) Start() []Event {
	if !e.running || e.state != StateSpawning {
		return nil
	}
	return e.spawn(nil)
}

// Reset throws the current game away and starts a new one. The high score
// is kept.
func (e *Engine) Reset() []Event {
	if err := e.resetState(); err != nil {
		// Dimensions were validated at construction.
		panic(err)
	}
	return e.Start()
}

func (e *Engine) spawn(events []Event) []Event {
	e.state = StateSpawning

	p := NewPiece(e.next)
	p.Pos = Point{Row: 0, Col: e.cfg.Width/2 - p.Shape.Cols()/2}
	e.next = e.randomizer.Next()

	if e.board.Collides(p.Shape, p.Pos) {
		e.piece = nil
		return e.finish(events, false)
	}

	e.piece = p
	e.pieces++
	e.state = StateFalling
	return append(events, Event{Type: EventPieceSpawned, Kind: p.Kind, Score: e.score, Level: e.level})
}

// try commits the candidate shape/position if it fits.
func (e *Engine) try(shape Shape, at Point) bool {
	if e.piece == nil || e.state != StateFalling {
		return false
	}
	if e.board.Collides(shape, at) {
		return false
	}
	e.piece.Shape = shape
	e.piece.Pos = at
	return true
}

// MoveLeft shifts the piece one column left if it fits.
func (e *Engine) MoveLeft() bool {
	if e.piece == nil {
		return false
	}
	return e.try(e.piece.Shape, Point{Row: e.piece.Pos.Row, Col: e.piece.Pos.Col - 1})
}

// MoveRight shifts the piece one column right if it fits.
func (e *Engine) MoveRight() bool {
	if e.piece == nil {
		return false
	}
	return e.try(e.piece.Shape, Point{Row: e.piece.Pos.Row, Col: e.piece.Pos.Col + 1})
}

// Rotate turns the piece clockwise in place if the result fits. There are
// no wall kicks: a blocked rotation leaves the piece untouched.
func (e *Engine) Rotate() bool {
	if e.piece == nil {
		return false
	}
	return e.try(e.piece.Shape.Rotate(), e.piece.Pos)
}

// SoftDrop moves the piece down one row, locking it when it cannot move.
func (e *Engine) SoftDrop() []Event {
	return e.Tick()
}

// Tick applies one step of gravity. When the piece is blocked it is merged,
// full lines are cleared and scored, the level is updated and the next piece
// spawns.
func (e *Engine) Tick() []Event {
	if e.piece == nil || e.state != StateFalling {
		return nil
	}

	below := Point{Row: e.piece.Pos.Row + 1, Col: e.piece.Pos.Col}
	if e.try(e.piece.Shape, below) {
		return nil
	}
	return e.lock()
}

func (e *Engine) lock() []Event {
	e.state = StateLocking
	p := e.piece
	e.board.Merge(p)
	e.piece = nil

	events := []Event{{Type: EventPieceLocked, Kind: p.Kind, Score: e.score, Level: e.level}}

	if cleared := e.board.ClearFullLines(); cleared > 0 {
		e.lines += cleared
		e.score += cleared * e.cfg.PointsPerLine
		events = append(events, Event{Type: EventLinesCleared, Lines: cleared, Score: e.score, Level: e.level})

		if e.levelUp() {
			events = append(events, Event{Type: EventLevelUp, Score: e.score, Level: e.level})
		}
	}

	return e.spawn(events)
}

// levelUp raises the level to score/PointsPerLevel+1, speeding gravity up by
// one step per level gained.
func (e *Engine) levelUp() bool {
	target := e.score/e.cfg.PointsPerLevel + 1
	if target <= e.level {
		return false
	}
	for e.level < target {
		e.level++
		e.dropInterval = max(e.dropInterval-e.cfg.DropIntervalStep, e.cfg.MinDropInterval)
	}
	return true
}

// Apply dispatches a player command. Moves and rotations produce no events.
func (e *Engine) Apply(cmd Command) []Event {
	switch cmd {
	case CommandMoveLeft:
		e.MoveLeft()
	case CommandMoveRight:
		e.MoveRight()
	case CommandRotate:
		e.Rotate()
	case CommandSoftDrop:
		return e.SoftDrop()
	}
	return nil
}

// Quit ends the session early. It behaves like a game over, including the
// high score update.
func (e *Engine) Quit() []Event {
	if !e.running {
		return nil
	}
	e.piece = nil
	return e.finish(nil, true)
}

func (e *Engine) finish(events []Event, quit bool) []Event {
	e.state = StateGameOver
	e.running = false

	ev := Event{
		Type:      EventGameOver,
		Score:     e.score,
		Level:     e.level,
		HighScore: e.highScore,
		Quit:      quit,
	}

	if e.score > e.highScore {
		e.highScore = e.score
		ev.HighScore = e.score
		ev.NewHighScore = true

		if e.store != nil {
			if err := e.store.Save(e.score); err != nil {
				e.logger.Printf("warning: high score %d not saved: %v", e.score, err)
				ev.Err = err
			}
		}
	}

	return append(events, ev)
}

// GhostRow returns the row the active piece would lock at if dropped
// straight down, or -1 without an active piece.
func (e *Engine) GhostRow() int {
	if e.piece == nil {
		return -1
	}
	row := e.piece.Pos.Row
	for !e.board.Collides(e.piece.Shape, Point{Row: row + 1, Col: e.piece.Pos.Col}) {
		row++
	}
	return row
}

func (e *Engine) Config() Config              { return e.cfg }
func (e *Engine) Board() *Board               { return e.board }
func (e *Engine) State() State                { return e.state }
func (e *Engine) Running() bool               { return e.running }
func (e *Engine) Score() int                  { return e.score }
func (e *Engine) Level() int                  { return e.level }
func (e *Engine) Lines() int                  { return e.lines }
func (e *Engine) Pieces() int                 { return e.pieces }
func (e *Engine) HighScore() int              { return e.highScore }
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }
func (e *Engine) Next() Kind                  { return e.next }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() (Piece, bool) {
	if e.piece == nil {
		return Piece{}, false
	}
	return *e.piece, true
}
