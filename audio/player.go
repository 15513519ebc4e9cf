package audio

// Player reacts to game moments with sound. Implementations must be safe to
// call from the game loop without blocking it.
type Player interface {
	StartMusic()
	StopMusic()
	// LineClear plays the cue for a batch of 1 to 4 cleared lines.
	LineClear(lines int)
	GameOver()
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) StartMusic()   {}
func (Nop) StopMusic()    {}
func (Nop) LineClear(int) {}
func (Nop) GameOver()     {}
func (Nop) Close() error  { return nil }
