package loop

import (
	"log"

	"github.com/plus3/blockfall/tetris"
)

// EventLogSystem writes notable engine events to Logger.
type EventLogSystem struct {
	Logger *log.Logger
}

func (s *EventLogSystem) Execute(frame *Frame) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	for _, ev := range frame.Events {
		switch ev.Type {
		case tetris.EventLinesCleared:
			if ev.Lines == 4 {
				logger.Printf("four lines at once, score %d", ev.Score)
			}
		case tetris.EventLevelUp:
			logger.Printf("level %d, gravity %s", ev.Level, frame.Engine.DropInterval())
		case tetris.EventGameOver:
			reason := "game over"
			if ev.Quit {
				reason = "quit"
			}
			logger.Printf("%s: score %d, level %d, lines %d, high score %d",
				reason, ev.Score, ev.Level, frame.Engine.Lines(), ev.HighScore)
			if ev.NewHighScore {
				logger.Printf("new high score %d", ev.HighScore)
			}
			if ev.Err != nil {
				logger.Printf("warning: %v", ev.Err)
			}
		}
	}
}
