package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a Config or board size cannot be used.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config holds the rules constants of a game.
type Config struct {
	Width  int
	Height int

	InitialDropInterval time.Duration
	DropIntervalStep    time.Duration
	MinDropInterval     time.Duration

	PointsPerLine  int
	PointsPerLevel int
}

// DefaultConfig returns the classic 10x20 setup: 500ms gravity, 50ms faster
// per level down to 100ms, 10 points per line and a level every 100 points.
func DefaultConfig() Config {
	return Config{
		Width:               10,
		Height:              20,
		InitialDropInterval: 500 * time.Millisecond,
		DropIntervalStep:    50 * time.Millisecond,
		MinDropInterval:     100 * time.Millisecond,
		PointsPerLine:       10,
		PointsPerLevel:      100,
	}
}

// Validate rejects configurations a game cannot start with.
func (c Config) Validate() error {
	switch {
	case c.Width < MaxShapeSize || c.Height < MaxShapeSize:
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, MaxShapeSize, MaxShapeSize, c.Width, c.Height)
	case c.InitialDropInterval <= 0:
		return fmt.Errorf("%w: initial drop interval must be positive, got %s", ErrInvalidConfig, c.InitialDropInterval)
	case c.MinDropInterval <= 0:
		return fmt.Errorf("%w: minimum drop interval must be positive, got %s", ErrInvalidConfig, c.MinDropInterval)
	case c.MinDropInterval > c.InitialDropInterval:
		return fmt.Errorf("%w: minimum drop interval %s exceeds initial %s",
			ErrInvalidConfig, c.MinDropInterval, c.InitialDropInterval)
	case c.DropIntervalStep < 0:
		return fmt.Errorf("%w: drop interval step must not be negative, got %s", ErrInvalidConfig, c.DropIntervalStep)
	case c.PointsPerLine <= 0:
		return fmt.Errorf("%w: points per line must be positive, got %d", ErrInvalidConfig, c.PointsPerLine)
	case c.PointsPerLevel <= 0:
		return fmt.Errorf("%w: points per level must be positive, got %d", ErrInvalidConfig, c.PointsPerLevel)
	}
	return nil
}
