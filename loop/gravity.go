package loop

import "time"

// GravitySystem drops the active piece one row each time the engine's
// current drop interval elapses. A slow frame never produces more than one
// drop.
type GravitySystem struct {
	accumulator time.Duration
}

func (s *GravitySystem) Execute(frame *Frame) {
	e := frame.Engine
	if !e.Running() {
		s.accumulator = 0
		return
	}

	s.accumulator += frame.DeltaTime
	if s.accumulator < e.DropInterval() {
		return
	}
	s.accumulator = 0
	frame.Emit(e.Tick()...)
}
