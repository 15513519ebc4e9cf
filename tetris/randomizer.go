package tetris

import "math/rand/v2"

// Randomizer picks the kind of each spawned piece.
type Randomizer interface {
	Next() Kind
}

type uniform struct {
	rng *rand.Rand
}

// NewUniform picks every kind with equal probability, independently.
func NewUniform(seed uint64) Randomizer {
	return &uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *uniform) Next() Kind {
	return Kind(u.rng.IntN(KindCount))
}

// Bag deals the seven kinds in shuffled batches so every kind appears once
// per seven pieces.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
	i     int
}

// NewBag creates a 7-bag randomizer.
func NewBag(seed uint64) *Bag {
	b := &Bag{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	b.shuffle()
	return b
}

func (b *Bag) shuffle() {
	b.kinds = Kinds()
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
	b.i = 0
}

func (b *Bag) Next() Kind {
	if b.i == len(b.kinds) {
		b.shuffle()
	}
	k := b.kinds[b.i]
	b.i++
	return k
}

type sequence struct {
	kinds []Kind
	i     int
}

// NewSequence cycles through kinds in order. It panics on an empty list.
func NewSequence(kinds ...Kind) Randomizer {
	if len(kinds) == 0 {
		panic("tetris: empty sequence")
	}
	return &sequence{kinds: kinds}
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.i]
	s.i = (s.i + 1) % len(s.kinds)
	return k
}
