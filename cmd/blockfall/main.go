// Command blockfall is a falling-block puzzle game for the desktop or the
// terminal.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/gui/debugui"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tui"
)

const (
	title = "blockfall"

	// tuiFrame is the terminal frame interval; the GUI runs at ebiten's
	// tick rate instead.
	tuiFrame = time.Second / 60
)

var errNotATerminal = errors.New("the tui frontend needs a terminal on stdout")

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], ".env")
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("blockfall: %v", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("blockfall: %v", err)
	}

	started := time.Now()
	var scheduler *loop.Scheduler
	switch cfg.Frontend {
	case config.FrontendTUI:
		scheduler, err = runTUI(cfg, engine)
	default:
		scheduler, err = runGUI(cfg, engine)
	}
	if err != nil {
		log.Fatalf("blockfall: %v", err)
	}
	// Closing the window or a signal ends the session like a quit, so the
	// high score is still saved.
	if engine.Running() {
		engine.Quit()
	}

	report := NewReport(cfg.Frontend, time.Since(started), engine, scheduler.Stats())
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("blockfall: report: %v", err)
	}
}

func newEngine(cfg config.Config) (*tetris.Engine, error) {
	engine, err := tetris.NewEngine(cfg.Game,
		tetris.WithRandomizer(cfg.NewRandomizer()),
		tetris.WithHighScoreStore(highscore.NewFileStore(cfg.HighScorePath)),
		tetris.WithGarbage(cfg.Garbage),
		tetris.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, err
	}
	engine.Start()
	return engine, nil
}

// newScheduler registers the systems shared by both frontends. render runs
// after the game systems and before the linger check.
func newScheduler(cfg config.Config, engine *tetris.Engine, input loop.InputSource, player audio.Player, render ...loop.System) *loop.Scheduler {
	s := loop.NewScheduler(engine)
	s.Register(&loop.InputSystem{Source: input})
	s.Register(&loop.GravitySystem{})
	s.Register(&loop.EventLogSystem{})
	s.Register(&loop.AudioSystem{Player: player})
	for _, r := range render {
		s.Register(r)
	}
	s.Register(&loop.LingerSystem{Linger: cfg.Linger})
	return s
}

func openPlayer(cfg config.Config, open func(volume float64) (audio.Player, error)) audio.Player {
	if cfg.Muted {
		return audio.Nop{}
	}
	p, err := open(cfg.Volume)
	if err != nil {
		log.Printf("warning: playing without sound: %v", err)
		return audio.Nop{}
	}
	return p
}

func runGUI(cfg config.Config, engine *tetris.Engine) (*loop.Scheduler, error) {
	player := openPlayer(cfg, func(v float64) (audio.Player, error) { return gui.NewSoundPlayer(v) })
	defer player.Close()

	game := gui.NewGame(nil, cfg.CellSize)
	var input loop.InputSource = gui.NewKeyboard()

	var overlay *debugui.Overlay
	widgets := &debugui.Queue{}
	if cfg.Debug {
		w, h := game.Renderer.Size(cfg.Game.Width, cfg.Game.Height)
		overlay = debugui.New(title, w, h)
		input = debugui.GuardedSource{Source: input, Capture: overlay.WantsKeyboard, Widgets: widgets}
		game.Overlay = overlay
	}

	var extra []loop.System
	if overlay != nil {
		extra = append(extra, overlay.System)
	}
	game.Scheduler = newScheduler(cfg, engine, input, player, extra...)

	if overlay != nil {
		overlay.System.Items = []debugui.Item{
			debugui.EngineWindow(engine, widgets),
			debugui.BoardWindow(engine),
			debugui.SchedulerWindow(game.Scheduler, 120),
		}
	}

	if err := gui.Run(game, title); err != nil {
		return nil, err
	}
	return game.Scheduler, nil
}

func runTUI(cfg config.Config, engine *tetris.Engine) (*loop.Scheduler, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return nil, errNotATerminal
	}
	if cfg.Debug {
		log.Printf("warning: the debug overlay is only available in the gui")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	// Log lines would tear the screen; replay them once it is closed.
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer func() {
		log.SetOutput(os.Stderr)
		os.Stderr.Write(logs.Bytes())
	}()

	player := openPlayer(cfg, func(v float64) (audio.Player, error) { return audio.NewSpeakerPlayer(v) })
	defer player.Close()

	keyboard := tui.NewKeyboard(screen)
	keyboard.OnResize = screen.Sync
	defer screen.Fini()

	scheduler := newScheduler(cfg, engine, keyboard, player, &tui.RenderSystem{Canvas: screen, Left: 2, Top: 1})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Run(ctx, tuiFrame); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return scheduler, nil
}
