package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
)

const period = 200 * time.Millisecond

func newTestGame(t *testing.T, mutate func(*config.Config)) (*Game, string) {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	dir := t.TempDir()
	g, err := NewGame(cfg, Options{Seed: 1, OutputDir: dir})
	require.NoError(t, err)
	t.Cleanup(g.Unload)

	// Keep the food off row 5 so straight runs never eat.
	g.state.Food = components.Cell{X: 0, Y: 0}
	return g, dir
}

// runToWall drives the default snake right until it hits the wall.
func runToWall(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 30 && !g.State().GameOver; i++ {
		g.advance(period)
	}
	require.True(t, g.State().GameOver)
}

func TestNewGameInitialState(t *testing.T) {
	g, dir := newTestGame(t, nil)

	s := g.State()
	assert.Equal(t, systems.InitialSnake(), s.Snake)
	assert.Equal(t, components.Right, s.Direction)
	assert.Zero(t, s.Score)
	assert.False(t, s.GameOver)
	assert.Zero(t, g.Tick())

	// Effective config is written next to the CSVs.
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestAdvanceStepsOncePerPeriod(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.advance(period - time.Millisecond)
	assert.Equal(t, components.Cell{X: 5, Y: 5}, g.State().Head())

	g.advance(time.Millisecond)
	assert.Equal(t, components.Cell{X: 6, Y: 5}, g.State().Head())
	assert.Equal(t, 1, g.Tick())
}

func TestSteerAppliesOnNextTick(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.pointerPressed(100, 100)
	g.pointerMoved(102, 140)

	g.advance(period)
	assert.Equal(t, components.Cell{X: 5, Y: 6}, g.State().Head())
	assert.Equal(t, components.Down, g.State().Direction)
}

func TestGameOverWritesSession(t *testing.T) {
	g, dir := newTestGame(t, nil)

	runToWall(t, g)

	// Head reaches column 19 after 14 steps; the 15th hits the wall.
	assert.Equal(t, 15, g.Tick())
	assert.Equal(t, components.Cell{X: 19, Y: 5}, g.State().Head())
	assert.Equal(t, 1, g.collector.Sessions())

	// Ticks keep firing but nothing changes.
	frozen := g.State()
	g.advance(3 * period)
	assert.Equal(t, frozen, g.State())
	assert.Equal(t, 15, g.Tick())

	require.NoError(t, g.outputManager.Close())
	data, err := os.ReadFile(filepath.Join(dir, "sessions.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], ",wall"), "row: %s", lines[1])
}

func TestDragOffBoardIgnored(t *testing.T) {
	g, _ := newTestGame(t, nil)

	// HUD band above the board.
	g.pointerPressed(270, float32(g.cfg.HUD.Height)/3)
	g.pointerMoved(270, float32(g.cfg.HUD.Height)/3+40)
	assert.Equal(t, components.Right, g.State().Direction)

	// Side margin of a wide window.
	g.drag.Release()
	g.resize(1280, 720)
	require.False(t, g.camera.Contains(100, 300))
	g.pointerPressed(100, 300)
	g.pointerMoved(100, 340)
	assert.Equal(t, components.Right, g.State().Direction)

	g.advance(period)
	assert.Equal(t, components.Cell{X: 6, Y: 5}, g.State().Head())
}

func TestSteerIgnoredWhileGameOver(t *testing.T) {
	g, _ := newTestGame(t, nil)
	runToWall(t, g)

	g.steer(components.Up)
	assert.Equal(t, components.Right, g.State().Direction)
}

func TestResetRestoresDefaultsAndPhase(t *testing.T) {
	g, _ := newTestGame(t, nil)
	runToWall(t, g)

	// Half a period accumulated before the reset must not carry over.
	g.advance(period / 2)
	g.resetRequested = true
	g.Reset()

	s := g.State()
	assert.Equal(t, systems.InitialSnake(), s.Snake)
	assert.Equal(t, components.Right, s.Direction)
	assert.Zero(t, s.Score)
	assert.False(t, s.GameOver)
	assert.False(t, g.resetRequested)
	assert.Zero(t, g.particles.Count())

	g.state.Food = components.Cell{X: 0, Y: 0}
	g.advance(period / 2)
	assert.Equal(t, components.Cell{X: 5, Y: 5}, g.State().Head())
	g.advance(period / 2)
	assert.Equal(t, components.Cell{X: 6, Y: 5}, g.State().Head())
}

func TestEatingBurstsParticles(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.state.Food = components.Cell{X: 6, Y: 5}

	g.advance(period)

	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, 4, g.State().Len())
	assert.Equal(t, g.cfg.Particles.FoodBurst, g.particles.Count())
}

func TestParticlesDisabled(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.Config) { c.Particles.Enabled = false })
	g.state.Food = components.Cell{X: 6, Y: 5}

	g.advance(period)

	assert.Equal(t, 1, g.State().Score)
	assert.Zero(t, g.particles.Count())
}

func TestUnloadStopsTicks(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.advance(period)
	g.Unload()

	assert.False(t, g.ticker.Running())
	before := g.State()
	g.advance(10 * period)
	assert.Equal(t, before, g.State())
	assert.Equal(t, 1, g.Tick())
}

func TestPerfWrittenEveryWindow(t *testing.T) {
	g, dir := newTestGame(t, func(c *config.Config) { c.Telemetry.LogEveryTicks = 2 })

	for i := 0; i < 4; i++ {
		g.perfCollector.StartFrame()
		g.advance(period)
		g.flushPerf()
		g.perfCollector.EndFrame()
	}

	require.NoError(t, g.outputManager.Close())
	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2,"))
	assert.True(t, strings.HasPrefix(lines[2], "4,"))
}

func TestResizeRecomputesBoard(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.resize(1280, 720)

	assert.Equal(t, float32(660), g.camera.Side)
	assert.Equal(t, float32(33), g.camera.CellSize)
}
