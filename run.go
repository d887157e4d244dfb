package spritekit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is a demo driven by Run. Every method runs on the draw goroutine.
type App interface {
	// Load creates and loads the app's textures. An error aborts Run before
	// the window opens.
	Load(ctx *Context) error
	// Update receives the frame's input events. Returning an error stops Run
	// and is returned from it.
	Update(ctx *Context, events []Event) error
	// Draw issues the frame's render calls.
	Draw(ctx *Context)
}

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// ClearColor fills the screen before Draw. The zero value is transparent
	// black; use ColorWhite for the classic white background.
	ClearColor Color
	// Font becomes the context's active font before Load.
	Font *Font
	// Logger receives context diagnostics; nil is silent.
	Logger *slog.Logger
	// Script, when set, drives input instead of the user.
	Script *Script
	// ScreenshotDir receives PNGs for script "screenshot" steps.
	ScreenshotDir string
}

// Run opens a window and drives app until it quits. The Context and every
// texture created through it are released before Run returns, on every path.
func Run(app App, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("spritekit: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	surface := NewEbitenSurface()
	ctx := NewContext(surface, NewImageSource(nil))
	defer ctx.Close()
	ctx.SetLogger(cfg.Logger)
	ctx.SetFont(cfg.Font)

	if err := app.Load(ctx); err != nil {
		return fmt.Errorf("spritekit: load: %w", err)
	}

	g := &game{
		app:     app,
		ctx:     ctx,
		surface: surface,
		cfg:     cfg,
		queue:   NewEventQueue(),
		shots:   &Screenshots{Dir: cfg.ScreenshotDir, Logger: cfg.Logger},
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts an App to ebiten.Game.
type game struct {
	app     App
	ctx     *Context
	surface *EbitenSurface
	cfg     RunConfig
	queue   *EventQueue
	shots   *Screenshots
}

func (g *game) Update() error {
	if g.cfg.Script != nil {
		g.cfg.Script.Step(g.queue, g.shots)
	}
	events := g.queue.Poll()
	for _, e := range events {
		if e.Type == EventQuit {
			return ebiten.Termination
		}
	}
	return g.app.Update(g.ctx, events)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.surface.SetTarget(screen)
	g.app.Draw(g.ctx)
	g.surface.SetTarget(nil)
	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
	g.shots.Flush(screen)
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
