package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated collision and visibility statistics for a
// time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Resolver outcomes during the window
	Slides    int `csv:"slides"`
	PushOuts  int `csv:"push_outs"`
	Fallbacks int `csv:"fallbacks"`

	// Penetration depth of every non-free resolution
	PenetrationMean float64 `csv:"penetration_mean"`
	PenetrationStd  float64 `csv:"penetration_std"`
	PenetrationP90  float64 `csv:"penetration_p90"`
	PenetrationMax  float64 `csv:"penetration_max"`

	// Projectiles
	ShotsFired    int `csv:"shots_fired"`
	DryFires      int `csv:"dry_fires"`
	BulletsCulled int `csv:"bullets_culled"`

	// Light rays cast during the window
	Wedges        int     `csv:"wedges"`
	RayLengthMean float64 `csv:"ray_length_mean"`
	RayLengthMin  float64 `csv:"ray_length_min"`
	RayLengthP10  float64 `csv:"ray_length_p10"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std, Min, Max, P10, P90 float64
}

// Summarize computes population mean and standard deviation, extremes and
// the 10th/90th percentiles. An empty sample yields zeros.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	var d Distribution
	d.Mean, d.Std = stat.PopMeanStdDev(values, nil)
	d.Min = floats.Min(values)
	d.Max = floats.Max(values)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	d.P10 = Percentile(sorted, 0.10)
	d.P90 = Percentile(sorted, 0.90)
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("slides", s.Slides),
		slog.Int("push_outs", s.PushOuts),
		slog.Int("fallbacks", s.Fallbacks),
		slog.Float64("penetration_mean", s.PenetrationMean),
		slog.Float64("penetration_max", s.PenetrationMax),
		slog.Int("shots_fired", s.ShotsFired),
		slog.Int("dry_fires", s.DryFires),
		slog.Int("bullets_culled", s.BulletsCulled),
		slog.Int("wedges", s.Wedges),
		slog.Float64("ray_length_mean", s.RayLengthMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("collision_window",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"slides", s.Slides,
		"push_outs", s.PushOuts,
		"fallbacks", s.Fallbacks,
		"penetration_mean", s.PenetrationMean,
		"penetration_std", s.PenetrationStd,
		"penetration_p90", s.PenetrationP90,
		"penetration_max", s.PenetrationMax,
		"shots_fired", s.ShotsFired,
		"dry_fires", s.DryFires,
		"bullets_culled", s.BulletsCulled,
		"wedges", s.Wedges,
		"ray_length_mean", s.RayLengthMean,
		"ray_length_min", s.RayLengthMin,
		"ray_length_p10", s.RayLengthP10,
	)
}
