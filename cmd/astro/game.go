package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs/debugui"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/shooter"
)

// Game adapts a shooter world to ebiten.
type Game struct {
	cfg     config.Config
	world   *shooter.World
	sampler *input.Sampler
	overlay *overlay
}

func NewGame(cfg config.Config, lvl *level.Level, debug bool) (*Game, error) {
	var opts []shooter.Option
	if debug {
		opts = append(opts, shooter.WithComponents(debugui.RegisterComponents))
	}
	world, err := shooter.NewWorld(cfg, lvl, opts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		world:   world,
		sampler: input.NewSampler(cp.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)}),
	}

	if debug {
		g.overlay = newOverlay(cfg, world)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
		if cfg.Player.Aim == config.AimPointer {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
	ebiten.SetTPS(cfg.Window.TPS)
	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	state := g.world.Input()
	g.sampler.Sample(state)

	dt := 1.0 / float64(g.cfg.Window.TPS)
	if g.overlay == nil {
		g.world.Tick(dt)
		return nil
	}

	state.Captured = g.overlay.capturing()
	g.overlay.backend.BeginFrame()
	g.world.Tick(dt)
	g.overlay.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world)
	drawAim(screen, g.world)
	drawHUD(screen, g.world)
	if g.overlay != nil {
		g.overlay.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}
