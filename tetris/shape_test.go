package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindShapes(t *testing.T) {
	tests := []struct {
		kind  tetris.Kind
		shape string
		color tetris.Color
	}{
		{tetris.KindI, "XXXX", tetris.Color{R: 0, G: 255, B: 255}},
		{tetris.KindJ, "X../XXX", tetris.Color{R: 0, G: 0, B: 255}},
		{tetris.KindL, "..X/XXX", tetris.Color{R: 255, G: 165, B: 0}},
		{tetris.KindO, "XX/XX", tetris.Color{R: 255, G: 255, B: 0}},
		{tetris.KindS, ".XX/XX.", tetris.Color{R: 0, G: 255, B: 0}},
		{tetris.KindT, ".X./XXX", tetris.Color{R: 128, G: 0, B: 128}},
		{tetris.KindZ, "XX./.XX", tetris.Color{R: 255, G: 0, B: 0}},
	}

	require.Len(t, tetris.Kinds(), tetris.KindCount)

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.shape, tt.kind.Shape().String())
			assert.Equal(t, tt.color, tt.kind.Color())

			cells := 0
			for range tt.kind.Shape().Cells() {
				cells++
			}
			assert.Equal(t, 4, cells, "every tetromino has four blocks")
		})
	}
}

func TestRotate(t *testing.T) {
	t.Run("four turns are the identity", func(t *testing.T) {
		for _, kind := range tetris.Kinds() {
			s := kind.Shape()
			assert.Equal(t, s, s.Rotate().Rotate().Rotate().Rotate(), kind.String())
		}
	})

	t.Run("clockwise with swapped bounding box", func(t *testing.T) {
		tests := []struct {
			kind tetris.Kind
			want []string
		}{
			{tetris.KindI, []string{"X/X/X/X", "XXXX"}},
			{tetris.KindT, []string{"X./XX/X.", "XXX/.X.", ".X/XX/.X", ".X./XXX"}},
			{tetris.KindJ, []string{"XX/X./X.", "XXX/..X", ".X/.X/XX", "X../XXX"}},
			{tetris.KindO, []string{"XX/XX"}},
		}

		for _, tt := range tests {
			s := tt.kind.Shape()
			for i, want := range tt.want {
				s = s.Rotate()
				assert.Equal(t, want, s.String(), "%s after %d turns", tt.kind, i+1)
			}
		}
	})

	t.Run("rows and cols swap", func(t *testing.T) {
		s := tetris.KindL.Shape()
		r := s.Rotate()
		assert.Equal(t, s.Cols(), r.Rows())
		assert.Equal(t, s.Rows(), r.Cols())
	})
}

func TestParseShape(t *testing.T) {
	s, err := tetris.ParseShape("X.", "XX")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 2, s.Cols())
	assert.True(t, s.Filled(0, 0))
	assert.False(t, s.Filled(0, 1))
	assert.False(t, s.Filled(5, 5), "outside the bounding box is empty")

	for _, rows := range [][]string{
		nil,
		{"XXXXX"},
		{"X", "X", "X", "X", "X"},
		{"XX", "X"},
		{"X?"},
		{""},
	} {
		_, err := tetris.ParseShape(rows...)
		assert.Error(t, err, "%q", rows)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "T", tetris.KindT.String())
	assert.Equal(t, "Kind(9)", tetris.Kind(9).String())
	assert.False(t, tetris.Kind(-1).Valid())
}

func TestNewPiece(t *testing.T) {
	p := tetris.NewPiece(tetris.KindS)
	p.Pos = tetris.Point{Row: 3, Col: 2}

	var got []tetris.Point
	for pt := range p.Cells() {
		got = append(got, pt)
	}

	assert.Equal(t, []tetris.Point{
		{Row: 3, Col: 3}, {Row: 3, Col: 4},
		{Row: 4, Col: 2}, {Row: 4, Col: 3},
	}, got)
}
