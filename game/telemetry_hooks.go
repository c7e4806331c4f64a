package game

import (
	"log/slog"

	"github.com/pthm-cable/snake/telemetry"
)

// recordSession logs a finished session with the running summary and
// appends it to sessions.csv.
func (g *Game) recordSession(rec telemetry.SessionRecord) {
	if rec.Score > g.best {
		g.best = rec.Score
	}
	slog.Info("game over", "session", rec, "summary", g.collector.Summary())

	if err := g.outputManager.WriteSession(rec); err != nil {
		slog.Error("failed to write session", "error", err)
	}
}

// flushPerf logs and writes frame timing when a perf window is due.
func (g *Game) flushPerf() {
	if !g.perfDue {
		return
	}
	g.perfDue = false

	stats := g.perfCollector.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WritePerf(stats, g.ticks); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
