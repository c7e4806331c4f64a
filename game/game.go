// Package game wires the snake state machine to the frame loop, input,
// rendering and telemetry.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/renderer"
	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
	"github.com/pthm-cable/snake/ui"
)

// Options configures a game instance.
type Options struct {
	Seed      uint64 // Food and particle RNG seed
	OutputDir string // CSV and config output (empty = disabled)
	LogStats  bool   // Periodic perf logging
}

// Game holds the complete game state and the shell around it.
type Game struct {
	cfg *config.Config

	state  systems.State
	food   *systems.RandomFood
	ticker *systems.Ticker
	drag   systems.DragTracker

	particles *systems.ParticleSystem

	// Rendering
	camera           *camera.Camera
	background       *renderer.BackgroundRenderer
	board            *renderer.BoardRenderer
	particleRenderer *renderer.ParticleRenderer
	hud              *ui.HUD
	gameOver         *ui.GameOverOverlay
	perfPanel        *ui.PerfPanel

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	perfDue       bool

	ticks          int // Non-ignored steps across all sessions
	best           int
	resetRequested bool

	screenWidth, screenHeight float32
}

// NewGame creates a game from the given config. The tick driver starts
// immediately; Unload stops it.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	food := systems.NewRandomFood(cfg.Game.GridSize, opts.Seed)
	w := float32(cfg.Screen.Width)
	h := float32(cfg.Screen.Height)

	theme := ui.ThemeFromConfig(cfg)
	uiRenderer := ui.NewRenderer(theme)
	colors := renderer.ColorsFromPalette(cfg.Derived.Palette)

	g := &Game{
		cfg:   cfg,
		state: systems.NewState(cfg.Game.GridSize, food),
		food:  food,
		particles: systems.NewParticleSystem(opts.Seed+1, systems.ParticleParams{
			Max:      cfg.Particles.Max,
			Lifetime: float32(cfg.Particles.Lifetime),
			Speed:    float32(cfg.Particles.Speed),
			Drag:     float32(cfg.Particles.Drag),
			Size:     float32(cfg.Particles.Size),
		}),

		camera:           camera.New(w, h, cfg.Game.GridSize, float32(cfg.HUD.Height)),
		background:       renderer.NewBackgroundRenderer(colors.BackgroundTop, colors.BackgroundBottom),
		board:            renderer.NewBoardRenderer(colors, float32(cfg.Board.CellInset)),
		particleRenderer: renderer.NewParticleRenderer(colors.Food),
		hud:              ui.NewHUD(uiRenderer),
		gameOver:         ui.NewGameOverOverlay(uiRenderer),
		perfPanel:        ui.NewPerfPanel(uiRenderer, 10, int32(cfg.HUD.Height)+10),

		collector:     telemetry.NewCollector(nil),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager: om,
		logStats:      opts.LogStats,

		screenWidth:  w,
		screenHeight: h,
	}
	g.ticker = systems.NewTicker(cfg.Derived.TickPeriod, cfg.Game.MaxCatchUp, g.step)
	g.ticker.Start()

	slog.Info("game started",
		"session", g.collector.SessionID(),
		"seed", opts.Seed,
		"grid", cfg.Game.GridSize,
		"tick_period", cfg.Derived.TickPeriod,
	)
	return g, nil
}

// step applies one tick to whatever state is current.
func (g *Game) step() {
	next, out := systems.Step(g.state, g.state.Direction, g.food)
	g.state = next
	if out == systems.OutcomeIgnored {
		return
	}
	g.ticks++

	switch {
	case out == systems.OutcomeAte:
		g.onFoodEaten()
	case out.Fatal():
		g.onGameOver(out)
	}

	if every := g.cfg.Telemetry.LogEveryTicks; every > 0 && g.ticks%every == 0 {
		g.perfDue = true
	}
}

// steer applies a direction read from a drag. Drags are ignored while the
// game-over overlay is up.
func (g *Game) steer(d components.Direction) {
	if g.state.GameOver {
		return
	}
	g.state.Steer(d)
	g.collector.Record(telemetry.NewGestureEvent(g.state.Tick))
}

// onFoodEaten bursts particles where the food was and records the event.
func (g *Game) onFoodEaten() {
	head := g.state.Head()
	if g.cfg.Particles.Enabled {
		x, y := head.Center()
		g.particles.Burst(x, y, g.cfg.Particles.FoodBurst, components.ParticleFood)
	}
	g.collector.Record(telemetry.NewFoodEvent(g.state.Tick, g.state.Score, g.state.Len()))
}

// onGameOver closes the session. The ticker keeps running; further steps
// are no-ops until reset.
func (g *Game) onGameOver(out systems.Outcome) {
	head := g.state.Head()
	if g.cfg.Particles.Enabled {
		x, y := head.Center()
		g.particles.Burst(x, y, g.cfg.Particles.CrashBurst, components.ParticleCrash)
	}
	g.drag.Release()

	rec, ok := g.collector.Record(telemetry.NewGameOverEvent(g.state.Tick, g.state.Score, g.state.Len(), out.String()))
	if !ok {
		return
	}
	g.recordSession(rec)
}

// Reset discards the current game and starts a fresh one. The tick phase
// restarts so the first step comes a full period later.
func (g *Game) Reset() {
	g.resetRequested = false
	prev := g.state
	g.state = g.state.Reset(g.food)
	g.ticker.Restart()
	g.drag.Release()
	g.particles.Clear()
	g.collector.Record(telemetry.NewResetEvent(g.ticks))

	slog.Info("game reset", "session", g.collector.SessionID(), "previous", prev)
}

// Update processes input and advances the game by the last frame's duration.
func (g *Game) Update() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()
	if g.resetRequested {
		g.Reset()
	}

	g.advance(frameTime())
}

// advance feeds elapsed time to the ticker and the particles.
func (g *Game) advance(dt time.Duration) {
	g.perfCollector.StartPhase(telemetry.PhaseStep)
	g.ticker.Advance(dt)

	g.perfCollector.StartPhase(telemetry.PhaseParticles)
	g.particles.Update(float32(dt.Seconds()))
}

// State returns the current game state.
func (g *Game) State() systems.State {
	return g.state
}

// Tick returns the number of steps applied across all sessions.
func (g *Game) Tick() int {
	return g.ticks
}

// Unload stops the tick driver and flushes output.
func (g *Game) Unload() {
	g.ticker.Stop()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
