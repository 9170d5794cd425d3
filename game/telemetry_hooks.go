package game

import "log/slog"

// flushTelemetry writes the window's collision and perf stats when the
// collector's window closes.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteCollisions(stats); err != nil {
		slog.Error("failed to write collision stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
}
