package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SessionRecord describes one finished game.
type SessionRecord struct {
	SessionID   string  `csv:"session_id"`
	Started     string  `csv:"started"`
	DurationSec float64 `csv:"duration_sec"`
	Ticks       int     `csv:"ticks"`
	Score       int     `csv:"score"`
	Length      int     `csv:"length"`
	Foods       int     `csv:"foods"`
	Gestures    int     `csv:"gestures"`
	Cause       string  `csv:"cause"` // wall or self
}

// LogValue implements slog.LogValuer for structured logging.
func (r SessionRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session", r.SessionID),
		slog.Int("score", r.Score),
		slog.Int("length", r.Length),
		slog.Int("ticks", r.Ticks),
		slog.Int("gestures", r.Gestures),
		slog.Float64("duration_sec", r.DurationSec),
		slog.String("cause", r.Cause),
	)
}

// Summary holds score statistics across finished sessions.
type Summary struct {
	Sessions int
	Best     int
	Mean     float64
	StdDev   float64
	Median   float64
}

// Summarize computes a Summary from a list of scores. The input is not
// modified.
func Summarize(scores []float64) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	s := Summary{
		Sessions: n,
		Best:     int(sorted[n-1]),
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if n == 1 {
		s.Mean = sorted[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("sessions", s.Sessions),
		slog.Int("best", s.Best),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("median", s.Median),
	)
}
