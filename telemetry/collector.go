package telemetry

import "github.com/pthm-cable/ghostlight/systems"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	slides    int
	pushOuts  int
	fallbacks int
	shots     int
	dryFires  int
	culled    int
	wedges    int

	penetrations []float64
	rayLengths   []float64
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int32(windowTicks),
		dt:                  dt,
	}
}

// RecordResolutions records the agents the resolver changed this tick.
func (c *Collector) RecordResolutions(changed []systems.Resolution) {
	for _, res := range changed {
		switch res.Outcome {
		case systems.OutcomeSlide:
			c.slides++
		case systems.OutcomePushOut:
			c.pushOuts++
		case systems.OutcomeFallback:
			c.fallbacks++
		default:
			continue
		}
		c.penetrations = append(c.penetrations, res.Penetration)
	}
}

// RecordShot records a fired projectile.
func (c *Collector) RecordShot() {
	c.shots++
}

// RecordDryFire records a trigger pull with an empty gun.
func (c *Collector) RecordDryFire() {
	c.dryFires++
}

// RecordCulled records projectiles removed for leaving the map.
func (c *Collector) RecordCulled(n int) {
	c.culled += n
}

// RecordWedge records the ray lengths of one built light wedge.
func (c *Collector) RecordWedge(lengths []float64) {
	c.wedges++
	c.rayLengths = append(c.rayLengths, lengths...)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32) WindowStats {
	pen := Summarize(c.penetrations)
	rays := Summarize(c.rayLengths)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Slides:    c.slides,
		PushOuts:  c.pushOuts,
		Fallbacks: c.fallbacks,

		PenetrationMean: pen.Mean,
		PenetrationStd:  pen.Std,
		PenetrationP90:  pen.P90,
		PenetrationMax:  pen.Max,

		ShotsFired:    c.shots,
		DryFires:      c.dryFires,
		BulletsCulled: c.culled,

		Wedges:        c.wedges,
		RayLengthMean: rays.Mean,
		RayLengthMin:  rays.Min,
		RayLengthP10:  rays.P10,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.slides, c.pushOuts, c.fallbacks = 0, 0, 0
	c.shots, c.dryFires, c.culled, c.wedges = 0, 0, 0, 0
	c.penetrations = c.penetrations[:0]
	c.rayLengths = c.rayLengths[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
