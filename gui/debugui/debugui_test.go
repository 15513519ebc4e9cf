package debugui

import (
	"io"
	"log"
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	assert.Zero(t, h.Average())
	assert.Empty(t, h.Ordered())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{1, 2}, h.Ordered())
	assert.Equal(t, float32(1.5), h.Average())

	h.Push(3)
	h.Push(4)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float32{2, 3, 4}, h.Ordered())
	assert.Equal(t, float32(3), h.Average())
	assert.Equal(t, float32(4), h.Max())
}

func newScheduler(t *testing.T) *loop.Scheduler {
	t.Helper()
	e, err := tetris.NewEngine(tetris.DefaultConfig(),
		tetris.WithRandomizer(tetris.NewSequence(tetris.KindO)),
		tetris.WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)
	e.Start()
	return loop.NewScheduler(e)
}

func TestSystemToggle(t *testing.T) {
	s := newScheduler(t)

	renders := 0
	pressed := false
	sys := &System{
		Items:  []Item{{Render: func() { renders++ }}, {Render: func() { renders++ }}},
		Toggle: func() bool { return pressed },
	}
	s.Register(sys)

	s.Once(0)
	assert.Zero(t, renders, "hidden by default")

	pressed = true
	s.Once(0)
	assert.True(t, sys.Visible)
	assert.Equal(t, 2, renders)

	pressed = false
	s.Once(0)
	assert.Equal(t, 4, renders)

	pressed = true
	s.Once(0)
	assert.False(t, sys.Visible)
	assert.Equal(t, 4, renders)
}

func TestGuardedSource(t *testing.T) {
	capture := false
	src := GuardedSource{
		Source: &loop.Script{
			{{Command: tetris.CommandMoveLeft}},
			{{Command: tetris.CommandRotate}},
		},
		Capture: func() bool { return capture },
	}

	assert.Equal(t, []loop.Input{{Command: tetris.CommandMoveLeft}}, src.Poll())

	capture = true
	assert.Nil(t, src.Poll())
	assert.Nil(t, src.Poll(), "captured input is consumed, not replayed")
}

func TestGuardedSourceWidgets(t *testing.T) {
	widgets := &Queue{}
	src := GuardedSource{
		Source:  &loop.Script{{{Command: tetris.CommandRotate}}},
		Capture: func() bool { return true },
		Widgets: widgets,
	}

	widgets.Push(loop.Input{Quit: true})
	assert.Equal(t, []loop.Input{{Quit: true}}, src.Poll(), "widget input passes while captured")
	assert.Empty(t, src.Poll())
}

func TestWidgetQuitReachesLoop(t *testing.T) {
	s := newScheduler(t)
	widgets := &Queue{}
	var seen []tetris.EventType
	s.Register(&loop.InputSystem{Source: GuardedSource{Source: &loop.Script{}, Widgets: widgets}})
	s.Register(eventRecorder(func(ev tetris.Event) { seen = append(seen, ev.Type) }))

	widgets.Push(loop.Input{Quit: true})
	s.Once(0)
	assert.False(t, s.Engine().Running())
	assert.Equal(t, []tetris.EventType{tetris.EventGameOver}, seen)
}

type eventRecorder func(tetris.Event)

func (r eventRecorder) Execute(frame *loop.Frame) {
	for _, ev := range frame.Events {
		r(ev)
	}
}
