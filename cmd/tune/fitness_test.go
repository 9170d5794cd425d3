package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/telemetry"
)

func TestParamVectorRoundtrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-12 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, def[i], back[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	pv.ApplyToConfig(cfg, []float64{-5, 100, 2.5, 0.9})

	got := pv.ExtractFromConfig(cfg)
	want := []float64{0.5, 20, 2.5, 0.9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config %v, spec default %v", spec.Path, got[i], spec.Default)
		}
	}
}

func TestHarnessResolvesInside(t *testing.T) {
	cfg := config.Default()
	fe := NewFitnessEvaluator(NewParamVector(), 1200, []int64{1, 2}, cfg)

	for _, seed := range fe.seeds {
		r := fe.runHarness(cfg, seed)
		if r.unresolved != 0 {
			t.Errorf("seed %d: %d resolutions left the center outside", seed, r.unresolved)
		}
		if want := 1200 / cfg.Derived.WindowTicks; len(r.windows) != want {
			t.Fatalf("seed %d: %d windows flushed, want %d", seed, len(r.windows), want)
		}
		var corrections int
		for _, w := range r.windows {
			corrections += w.Slides + w.PushOuts + w.Fallbacks
		}
		if corrections == 0 {
			t.Errorf("seed %d: harness never reached a wall", seed)
		}
	}
}

func TestHarnessDeterministic(t *testing.T) {
	cfg := config.Default()
	fe := NewFitnessEvaluator(NewParamVector(), 600, []int64{7}, cfg)

	a := fe.runHarness(cfg, 7)
	b := fe.runHarness(cfg, 7)
	if a.escapes != b.escapes || a.displacement != b.displacement || len(a.windows) != len(b.windows) {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestComputeFitness(t *testing.T) {
	clean := &runResult{ticks: 100, windows: []telemetry.WindowStats{{Slides: 4, PenetrationMean: 0.5}}, displacement: 2}
	escaped := &runResult{ticks: 100, escapes: 1, windows: clean.windows, displacement: 2}

	if computeFitness(escaped) <= computeFitness(clean) {
		t.Errorf("escape not penalised: %v <= %v", computeFitness(escaped), computeFitness(clean))
	}
	if got := computeFitness(&runResult{}); got != 0 {
		t.Errorf("empty run fitness = %v, want 0", got)
	}
	// 4 corrections: penetration 0.5, displacement 0.5 each
	if got, want := computeFitness(clean), 0.5+0.5*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("clean fitness = %v, want %v", got, want)
	}
}
