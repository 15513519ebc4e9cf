// Package debugui is a Dear ImGui overlay for inspecting a running game. It
// plugs into the gui frontend and toggles with F1.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
)

// ToggleKey shows and hides the overlay.
const ToggleKey = ebiten.KeyF1

// Item holds one ImGui render function, called once per visible frame.
type Item struct {
	Render func()
}

// System queues the render functions of every item while the overlay is
// visible. They run at the end of the frame, between the backend's
// BeginFrame and EndFrame.
type System struct {
	Items   []Item
	Visible bool
	Toggle  func() bool
}

func (s *System) Execute(frame *loop.Frame) {
	if s.Toggle != nil && s.Toggle() {
		s.Visible = !s.Visible
	}
	if !s.Visible {
		return
	}
	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Overlay owns the ImGui ebiten backend. It satisfies gui.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	System  *System
}

// New creates the backend and window and the system feeding it. Register
// System with the scheduler.
func New(title string, width, height int, items ...Item) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: backend,
		System: &System{
			Items:  items,
			Toggle: func() bool { return inpututil.IsKeyJustPressed(ToggleKey) },
		},
	}
}

func (o *Overlay) BeginFrame() { o.backend.BeginFrame() }

func (o *Overlay) EndFrame() { o.backend.EndFrame() }

func (o *Overlay) Draw(screen *ebiten.Image) { o.backend.Draw(screen) }

func (o *Overlay) Layout(width, height int) { o.backend.Layout(width, height) }

// WantsKeyboard reports whether a visible ImGui widget has keyboard focus.
func (o *Overlay) WantsKeyboard() bool {
	return o.System.Visible && imgui.CurrentIO().WantCaptureKeyboard()
}

// Queue collects inputs issued from overlay widgets.
type Queue struct {
	pending []loop.Input
}

func (q *Queue) Push(in loop.Input) {
	q.pending = append(q.pending, in)
}

func (q *Queue) Poll() []loop.Input {
	out := q.pending
	q.pending = nil
	return out
}

// GuardedSource drops game input while Capture reports true, so typing into
// the overlay does not move pieces. Inputs from Widgets always pass.
type GuardedSource struct {
	Source  loop.InputSource
	Capture func() bool
	Widgets *Queue
}

func (g GuardedSource) Poll() []loop.Input {
	inputs := g.Source.Poll()
	if g.Capture != nil && g.Capture() {
		inputs = nil
	}
	if g.Widgets != nil {
		inputs = append(inputs, g.Widgets.Poll()...)
	}
	return inputs
}
