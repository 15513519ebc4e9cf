package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
)

// Overlay is drawn on top of the game, such as the debug UI. BeginFrame and
// EndFrame bracket every scheduler frame.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game adapts a scheduler to ebiten.Game. Each ebiten update runs exactly
// one scheduler frame.
type Game struct {
	Scheduler *loop.Scheduler
	Renderer  *Renderer
	Overlay   Overlay
}

// NewGame creates a game drawing cellSize pixel blocks.
func NewGame(s *loop.Scheduler, cellSize int) *Game {
	return &Game{Scheduler: s, Renderer: NewRenderer(cellSize)}
}

// FrameTime is the simulated time per update.
func FrameTime() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}
	g.Scheduler.Once(FrameTime())
	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}

	if g.Scheduler.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Scheduler.Engine().Snapshot())
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.Size()
}

// Size returns the logical screen size for the engine's board.
func (g *Game) Size() (int, int) {
	cfg := g.Scheduler.Engine().Config()
	return g.Renderer.Size(cfg.Width, cfg.Height)
}

// Run opens the window and blocks until the scheduler stops or the window is
// closed.
func Run(g *Game, title string) error {
	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
