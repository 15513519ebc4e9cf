package loop

import "time"

// DefaultLinger is how long the final board stays up after a game ends.
const DefaultLinger = time.Second

// LingerSystem stops the loop once the game has been over for Linger. A
// negative Linger keeps the loop alive until the player quits. Restarting
// during the wait cancels it.
type LingerSystem struct {
	Linger time.Duration

	waited time.Duration
}

func (s *LingerSystem) Execute(frame *Frame) {
	if frame.Engine.Running() {
		s.waited = 0
		return
	}
	if s.Linger < 0 {
		return
	}

	s.waited += frame.DeltaTime
	if s.waited >= s.Linger {
		frame.Commands.Stop()
	}
}
