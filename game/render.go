package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/telemetry"
	"github.com/pthm-cable/snake/ui"
)

// Draw renders the frame and closes the frame's perf sample.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)

	w := int32(g.screenWidth)
	h := int32(g.screenHeight)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(w, h)
	g.board.Draw(g.camera, g.state)
	if g.cfg.Particles.Enabled {
		g.particleRenderer.Draw(g.camera, g.particles)
	}

	g.hud.Draw(ui.HUDData{
		Score:       g.state.Score,
		Best:        g.best,
		ScreenWidth: w,
		HUDHeight:   int32(g.cfg.HUD.Height),
	})

	if g.state.GameOver && g.gameOver.Draw(w, h) {
		// Applied at the start of the next Update.
		g.resetRequested = true
	}

	if g.perfPanel.IsVisible() {
		stats := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseAvg: stats.PhaseAvg,
			Total:    stats.AvgFrameDuration,
			FPS:      stats.FPS,
			Tick:     g.ticks,
		})
	}

	rl.EndDrawing()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushPerf()
	g.perfCollector.EndFrame()
}
