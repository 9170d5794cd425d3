package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/systems"
	"github.com/pthm-cable/ghostlight/telemetry"
)

// Fitness weights. Escapes dominate, fallbacks come next, and the remaining
// terms separate configs that never lose the agent.
const (
	weightUnresolved  = 10000.0
	weightEscape      = 1000.0
	weightFallback    = 100.0
	weightPenetration = 1.0
	weightDisplace    = 0.5
	weightSpeedLoss   = 10.0

	burstMax      = 4.0 // agents move at up to burstMax times their speed
	targetArrive  = 20.0
	targetOverrun = 1.3 // targets are drawn this far past the map radius
	retargetTicks = 180 // targets outside the map are abandoned after this
)

// FitnessEvaluator runs resolver-only headless harnesses and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestWindows []telemetry.WindowStats
	lastEscapes int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestWindows returns the window stats of the best seed of the best evaluation.
func (fe *FitnessEvaluator) BestWindows() []telemetry.WindowStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestWindows
}

// LastEscapes returns the total escapes across seeds in the most recent
// evaluation.
func (fe *FitnessEvaluator) LastEscapes() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastEscapes
}

// runResult holds the results from a single harness run.
type runResult struct {
	ticks        int32
	unresolved   int     // resolutions that left the center outside the map
	escapes      int     // ticks ending with the center outside the map
	displacement float64 // summed center corrections
	speedLoss    float64 // summed relative speed lost to corrections
	windows      []telemetry.WindowStats
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runHarness(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	var escapes int
	best := math.Inf(1)
	var bestWindows []telemetry.WindowStats

	for _, r := range results {
		f := computeFitness(r)
		total += f
		escapes += r.escapes
		if f < best {
			best = f
			bestWindows = r.windows
		}
	}
	avg := total / float64(len(results))

	fe.mu.Lock()
	if avg < fe.bestFitness {
		fe.bestFitness = avg
		fe.bestWindows = bestWindows
	}
	fe.lastEscapes = escapes
	fe.mu.Unlock()

	return avg
}

// runHarness drives one agent with bursty random-target steering through the
// resolver for maxTicks ticks.
func (fe *FitnessEvaluator) runHarness(cfg *config.Config, seed int64) *runResult {
	dt := cfg.Physics.DT
	radius := cfg.Player.Radius

	polygon := systems.GenerateMapPolygon(cfg.Map.Radius, cfg.Map.Points, cfg.Derived.MapJitter, seed)
	shape := collision.NewConvex(polygon...)
	mapVolume := collision.NewVolume(&shape, r2.Vec{})

	resolver := systems.NewResolver(cfg.Collision)
	collector := telemetry.NewCollector(cfg.Derived.WindowTicks, dt)
	rng := rand.New(rand.NewSource(seed))

	pick := func() r2.Vec {
		angle := rng.Float64() * 2 * math.Pi
		dist := math.Sqrt(rng.Float64()) * cfg.Map.Radius * targetOverrun
		return r2.Vec{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)}
	}

	result := &runResult{ticks: fe.maxTicks}
	center := mapVolume.Center()
	target := pick()
	var chasing int

	for tick := int32(0); tick < fe.maxTicks; tick++ {
		to := r2.Sub(target, center)
		chasing++
		if r2.Norm(to) < targetArrive || chasing >= retargetTicks {
			target = pick()
			to = r2.Sub(target, center)
			chasing = 0
		}

		var velocity r2.Vec
		if n := r2.Norm(to); n > 0 {
			speed := cfg.Player.Speed * (1 + (burstMax-1)*rng.Float64())
			velocity = r2.Scale(speed/n, to)
		}

		res := resolver.Resolve(center, velocity, mapVolume, radius, dt)
		if !mapVolume.ContainsPoint(res.Center) {
			result.unresolved++
		}
		if res.Outcome != systems.OutcomeFree {
			collector.RecordResolutions([]systems.Resolution{res})
			result.displacement += r2.Norm(r2.Sub(res.Center, center))
			if in := r2.Norm(velocity); in > 0 {
				result.speedLoss += math.Max(0, in-r2.Norm(res.Velocity)) / in
			}
		}

		center = r2.Add(res.Center, r2.Scale(dt, res.Velocity))
		if !mapVolume.ContainsPoint(center) {
			result.escapes++
		}

		if collector.ShouldFlush(tick + 1) {
			result.windows = append(result.windows, collector.Flush(tick+1))
		}
	}
	return result
}

// copyConfig creates a copy of the base config. Config holds only value
// fields apart from the colour slices, which the harness never writes.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness turns a run into a scalar (lower = better).
func computeFitness(r *runResult) float64 {
	var fallbacks, corrections int
	var penetration float64
	for _, w := range r.windows {
		fallbacks += w.Fallbacks
		n := w.Slides + w.PushOuts + w.Fallbacks
		corrections += n
		penetration += w.PenetrationMean * float64(n)
	}

	ticks := float64(r.ticks)
	if ticks == 0 {
		return 0
	}

	fitness := weightUnresolved*float64(r.unresolved)/ticks +
		weightEscape*float64(r.escapes)/ticks +
		weightFallback*float64(fallbacks)/ticks
	if corrections > 0 {
		n := float64(corrections)
		fitness += weightPenetration*penetration/n +
			weightDisplace*r.displacement/n +
			weightSpeedLoss*r.speedLoss/n
	}
	return fitness
}
