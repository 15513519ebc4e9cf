package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

const ghostBit = 1 << 24

func spriteKey(c tetris.Color, ghost bool) uint32 {
	k := c.Packed()
	if ghost {
		k |= ghostBit
	}
	return k
}

func rgba(c tetris.Color, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func shade(c tetris.Color, f float32) tetris.Color {
	scale := func(v uint8) uint8 { return uint8(min(float32(v)*f, 255)) }
	return tetris.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Sprites caches one block image per color so a frame only issues image
// draws.
type Sprites struct {
	size  int
	cache *intmap.Map[uint32, *ebiten.Image]
}

// NewSprites creates a cache of size x size pixel blocks.
func NewSprites(size int) *Sprites {
	return &Sprites{
		size:  size,
		cache: intmap.New[uint32, *ebiten.Image](16),
	}
}

// Block returns the solid block for c.
func (s *Sprites) Block(c tetris.Color) *ebiten.Image {
	return s.get(c, false)
}

// Ghost returns the outlined landing-preview block for c.
func (s *Sprites) Ghost(c tetris.Color) *ebiten.Image {
	return s.get(c, true)
}

// Len returns the number of cached images.
func (s *Sprites) Len() int {
	return s.cache.Len()
}

func (s *Sprites) get(c tetris.Color, ghost bool) *ebiten.Image {
	key := spriteKey(c, ghost)
	if img, ok := s.cache.Get(key); ok {
		return img
	}

	img := ebiten.NewImage(s.size, s.size)
	size := float32(s.size)
	if ghost {
		vector.StrokeRect(img, 1, 1, size-2, size-2, 2, rgba(c, 140), false)
	} else {
		img.Fill(rgba(c, 255))
		vector.StrokeRect(img, 0.5, 0.5, size-1, size-1, 1, rgba(shade(c, 0.6), 255), false)
		vector.DrawFilledRect(img, 2, 2, size-4, 3, rgba(shade(c, 1.2), 120), false)
	}
	s.cache.Put(key, img)
	return img
}
