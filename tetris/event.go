package tetris

import "fmt"

// EventType classifies engine events.
type EventType int

const (
	EventPieceSpawned EventType = iota
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventPieceSpawned:
		return "PieceSpawned"
	case EventPieceLocked:
		return "PieceLocked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is something presentation may react to: play a sound, flash the
// board, show the final score. Score and Level are the values after the
// event took effect.
type Event struct {
	Type EventType

	// Kind of the spawned or locked piece.
	Kind Kind
	// Lines removed by a LinesCleared event.
	Lines int

	Score int
	Level int

	// GameOver only.
	HighScore    int
	NewHighScore bool
	Quit         bool
	// Err is set when a new high score could not be saved.
	Err error
}

func (e Event) String() string {
	switch e.Type {
	case EventPieceSpawned, EventPieceLocked:
		return fmt.Sprintf("%s(%s)", e.Type, e.Kind)
	case EventLinesCleared:
		return fmt.Sprintf("%s(%d, score=%d)", e.Type, e.Lines, e.Score)
	case EventLevelUp:
		return fmt.Sprintf("%s(%d)", e.Type, e.Level)
	case EventGameOver:
		return fmt.Sprintf("%s(score=%d, high=%d)", e.Type, e.Score, e.HighScore)
	default:
		return e.Type.String()
	}
}

// Command is one discrete player input.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandSoftDrop
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandRotate:
		return "Rotate"
	case CommandSoftDrop:
		return "SoftDrop"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}
