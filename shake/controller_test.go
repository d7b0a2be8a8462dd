package shake

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/shakecam/gamemath"
)

func floatPtr(f float64) *float64 {
	return &f
}

func newTestController(pos *gamemath.Vec3, opts Options) *Controller {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	return NewController(pos, opts)
}

func TestReversibility(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		steps   int
		dt      float64
		explicit bool // call Stop explicitly rather than running out
	}{
		{"random_direction_explicit_stop", DefaultOptions(), 17, 1.0 / 60.0, true},
		{"fixed_direction_explicit_stop", Options{MaxAmplitude: 3, FalloffDuration: 0.5, AccelerationDuration: 0.5, Frequency: 22, DirectionDeg: floatPtr(45)}, 9, 1.0 / 30.0, true},
		{"run_to_completion", Options{MaxAmplitude: 2, FalloffDuration: 0.3, AccelerationDuration: 0.2, Frequency: 13}, 40, 1.0 / 60.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := gamemath.Vec3{X: 10, Y: -4, Z: 2}
			before := pos
			ctrl := newTestController(&pos, c.opts)

			ctrl.Start()
			for i := 0; i < c.steps; i++ {
				ctrl.Update(c.dt)
			}
			if c.explicit {
				ctrl.Stop()
			}

			if ctrl.Shaking() {
				t.Fatalf("controller still shaking after stop")
			}
			if math.Abs(pos.X-before.X) > 1e-9 || math.Abs(pos.Y-before.Y) > 1e-9 || math.Abs(pos.Z-before.Z) > 1e-9 {
				t.Fatalf("position not restored: before %+v, after %+v", before, pos)
			}
		})
	}
}

func TestEnvelopeBoundaries(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         1,
		AccelerationDuration: 0.7,
		FalloffDuration:      1.3,
		Frequency:            15,
	})

	if got := ctrl.Envelope(0); got != 0 {
		t.Fatalf("Envelope(0) = %v, want 0", got)
	}
	if got := ctrl.Envelope(0.7); math.Abs(got-1.0) > 1e-3 {
		t.Fatalf("Envelope(accelerationDuration) = %v, want 1.0 +/- 1e-3", got)
	}
	if got := ctrl.Envelope(2.0); got != 0 {
		t.Fatalf("Envelope(totalDuration) = %v, want 0", got)
	}
	if got := ctrl.Envelope(5.0); got != 0 {
		t.Fatalf("Envelope past totalDuration = %v, want 0", got)
	}
}

func TestEnvelopeMonotonicPhases(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		AccelerationDuration: 1.0,
		FalloffDuration:      1.0,
	})

	prev := ctrl.Envelope(0)
	for i := 1; i <= 100; i++ {
		v := ctrl.Envelope(float64(i) / 100)
		if v < prev {
			t.Fatalf("rise phase decreased at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}

	prev = ctrl.Envelope(1.0)
	for i := 1; i <= 100; i++ {
		v := ctrl.Envelope(1.0 + float64(i)/100)
		if v > prev {
			t.Fatalf("falloff phase increased at t=%v: %v > %v", 1.0+float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestDisabledFalloffHoldsAtMax(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		AccelerationDuration: 0.5,
		FalloffDuration:      -1,
	})

	for _, tt := range []float64{0.5001, 1, 10, 1000, 1e9} {
		if got := ctrl.Envelope(tt); got != 1.0 {
			t.Fatalf("Envelope(%v) = %v, want 1.0 with falloff disabled", tt, got)
		}
	}
	if got := ctrl.Falloff(); got != -1.0 {
		t.Fatalf("Falloff() = %v, want -1 sentinel", got)
	}
}

func TestDisabledFalloffAutoStopsAtRiseEnd(t *testing.T) {
	// With falloff disabled the total duration is just the rise time, so the
	// shake still ends on its own once the envelope reaches the top.
	pos := gamemath.Vec3{X: 3, Y: 4}
	before := pos
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         9,
		AccelerationDuration: 1.5,
		FalloffDuration:      -1,
		Frequency:            7,
	})

	if got := ctrl.TotalDuration(); got != 1.5 {
		t.Fatalf("TotalDuration = %v, want rise time 1.5 with falloff disabled", got)
	}

	ctrl.Start()
	for i := 0; i < 91; i++ { // 91/60 s > 1.5 s
		ctrl.Update(1.0 / 60.0)
	}

	if ctrl.Shaking() {
		t.Fatalf("shake with disabled falloff did not stop at total duration")
	}
	if math.Abs(pos.X-before.X) > 1e-9 || math.Abs(pos.Y-before.Y) > 1e-9 {
		t.Fatalf("auto-stop left residual offset: before %+v, after %+v", before, pos)
	}
}

func TestZeroAccelerationSkipsRise(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		AccelerationDuration: 0,
		FalloffDuration:      1.0,
	})

	// With no rise phase the envelope starts at the top of the falloff curve.
	if got := ctrl.Envelope(0); got != 1.0 {
		t.Fatalf("Envelope(0) = %v, want 1.0 with zero acceleration", got)
	}
	if got := ctrl.Acceleration(); got != 0 {
		t.Fatalf("Acceleration() = %v, want 0 for zero duration", got)
	}
}

func TestAutoStop(t *testing.T) {
	pos := gamemath.Vec3{X: 1, Y: 2}
	before := pos
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         1,
		AccelerationDuration: 0.2,
		FalloffDuration:      0.3,
		Frequency:            15,
	})

	ctrl.Start()
	for i := 0; i < 11; i++ { // 11 * 0.05 = 0.55 > 0.5
		ctrl.Update(0.05)
	}

	if ctrl.Shaking() {
		t.Fatalf("expected auto-stop after total duration elapsed")
	}
	if math.Abs(pos.X-before.X) > 1e-9 || math.Abs(pos.Y-before.Y) > 1e-9 {
		t.Fatalf("auto-stop left residual offset: before %+v, after %+v", before, pos)
	}
}

func TestFixedDirectionDeterminism(t *testing.T) {
	// Direction 90deg points the offset along +X: the offset vector is
	// (A*sin(angle), A*cos(angle)), so Y stays ~0 and X carries the full
	// signed amplitude.
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         2,
		AccelerationDuration: 1,
		FalloffDuration:      1,
		Frequency:            1,
		DirectionDeg:         floatPtr(90),
	})

	ctrl.Start()
	ctrl.Update(0.25)

	wantX := ctrl.Envelope(0.25) * 2 * math.Sin(2*math.Pi*0.25)
	if math.Abs(pos.Y) > 1e-9 {
		t.Fatalf("y offset = %v, want ~0 for 90deg direction", pos.Y)
	}
	if math.Abs(pos.X-wantX) > 1e-9 {
		t.Fatalf("x offset = %v, want %v", pos.X, wantX)
	}
	if wantX <= 0 {
		t.Fatalf("expected positive amplitude at t=0.25 with frequency 1, got %v", wantX)
	}

	// Same configuration reproduces the same trajectory exactly.
	pos2 := gamemath.Vec3{}
	ctrl2 := newTestController(&pos2, Options{
		MaxAmplitude:         2,
		AccelerationDuration: 1,
		FalloffDuration:      1,
		Frequency:            1,
		DirectionDeg:         floatPtr(90),
	})
	ctrl2.Start()
	ctrl2.Update(0.25)
	if pos2 != pos {
		t.Fatalf("fixed-direction shake not reproducible: %+v vs %+v", pos, pos2)
	}

	// Direction 0deg points along +Y.
	pos3 := gamemath.Vec3{}
	ctrl3 := newTestController(&pos3, Options{
		MaxAmplitude:         2,
		AccelerationDuration: 1,
		FalloffDuration:      1,
		Frequency:            1,
		DirectionDeg:         floatPtr(0),
	})
	ctrl3.Start()
	ctrl3.Update(0.25)
	if math.Abs(pos3.X) > 1e-9 {
		t.Fatalf("x offset = %v, want ~0 for 0deg direction", pos3.X)
	}
}

func TestRandomDirectionDistribution(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         1,
		AccelerationDuration: 0,
		FalloffDuration:      10000,
		Frequency:            0.26, // keep the oscillator away from zero crossings most frames
		Rand:                 rand.New(rand.NewSource(7)),
	})

	ctrl.Start()

	const frames = 4000
	var quadrants [4]int
	sampled := 0
	prev := gamemath.Vec3{}
	for i := 0; i < frames; i++ {
		ctrl.Update(1.0 / 60.0)
		off := pos // envelope ~1, so position == live offset
		if math.Hypot(off.X, off.Y) < 1e-6 {
			prev = off
			continue
		}
		angle := math.Atan2(off.Y, off.X)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		quadrants[int(angle/(math.Pi/2))%4]++
		sampled++
		if off == prev {
			t.Fatalf("offset did not change between frames %d and %d", i-1, i)
		}
		prev = off
	}

	for q, n := range quadrants {
		ratio := float64(n) / float64(sampled)
		if ratio < 0.15 || ratio > 0.35 {
			t.Fatalf("quadrant %d ratio %v outside [0.15, 0.35]; counts %v", q, ratio, quadrants)
		}
	}
}

func TestSetTotalDurationRescale(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		AccelerationDuration: 0.4,
		FalloffDuration:      0.6,
	})

	ctrl.SetTotalDuration(2.0)

	if got := ctrl.AccelerationDuration(); math.Abs(got-0.8) > 1e-12 {
		t.Fatalf("AccelerationDuration = %v, want 0.8", got)
	}
	if got := ctrl.FalloffDuration(); math.Abs(got-1.2) > 1e-12 {
		t.Fatalf("FalloffDuration = %v, want 1.2", got)
	}
	if got := ctrl.TotalDuration(); math.Abs(got-2.0) > 1e-12 {
		t.Fatalf("TotalDuration = %v, want 2.0", got)
	}
}

func TestSetTotalDurationBranches(t *testing.T) {
	t.Run("non_positive_disables_falloff", func(t *testing.T) {
		pos := gamemath.Vec3{}
		ctrl := newTestController(&pos, Options{AccelerationDuration: 0.4, FalloffDuration: 0.6})
		ctrl.SetTotalDuration(0)
		if ctrl.FalloffDuration() >= 0 {
			t.Fatalf("FalloffDuration = %v, want disabled", ctrl.FalloffDuration())
		}
		if got := ctrl.AccelerationDuration(); got != 0.4 {
			t.Fatalf("AccelerationDuration = %v, want unchanged 0.4", got)
		}
	})

	t.Run("disabled_falloff_sets_acceleration_only", func(t *testing.T) {
		pos := gamemath.Vec3{}
		ctrl := newTestController(&pos, Options{AccelerationDuration: 0.4, FalloffDuration: -1})
		ctrl.SetTotalDuration(3)
		if got := ctrl.AccelerationDuration(); got != 3 {
			t.Fatalf("AccelerationDuration = %v, want 3", got)
		}
		if ctrl.FalloffDuration() >= 0 {
			t.Fatalf("falloff unexpectedly re-enabled: %v", ctrl.FalloffDuration())
		}
	})
}

func TestDerivedSetterClamps(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, DefaultOptions())

	ctrl.SetAccelerationDuration(-5)
	if got := ctrl.AccelerationDuration(); got != 0 {
		t.Fatalf("negative acceleration duration not clamped: %v", got)
	}

	ctrl.SetAcceleration(4)
	if got := ctrl.AccelerationDuration(); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("SetAcceleration(4): duration = %v, want 0.25", got)
	}
	if got := ctrl.Acceleration(); math.Abs(got-4) > 1e-12 {
		t.Fatalf("Acceleration() = %v, want 4", got)
	}

	ctrl.SetAcceleration(0)
	if got := ctrl.AccelerationDuration(); got != 0 {
		t.Fatalf("SetAcceleration(0): duration = %v, want 0", got)
	}

	ctrl.SetFalloff(15.0 / 8.0)
	if got := ctrl.FalloffDuration(); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("SetFalloff(15/8): duration = %v, want 1.0", got)
	}
	if got := ctrl.Falloff(); math.Abs(got-15.0/8.0) > 1e-12 {
		t.Fatalf("Falloff() = %v, want 15/8", got)
	}

	ctrl.SetFalloff(0)
	if got := ctrl.FalloffDuration(); got >= 0 {
		t.Fatalf("SetFalloff(0): duration = %v, want disabled", got)
	}
}

func TestStartRestartsEnvelope(t *testing.T) {
	pos := gamemath.Vec3{}
	ctrl := newTestController(&pos, Options{
		MaxAmplitude:         1,
		AccelerationDuration: 1,
		FalloffDuration:      1,
		Frequency:            15,
	})

	ctrl.Start()
	ctrl.Update(0.5)
	if ctrl.Elapsed() != 0.5 {
		t.Fatalf("Elapsed = %v, want 0.5", ctrl.Elapsed())
	}

	ctrl.Start()
	if ctrl.Elapsed() != 0 {
		t.Fatalf("Start mid-shake did not reset elapsed time: %v", ctrl.Elapsed())
	}
	if !ctrl.Shaking() {
		t.Fatalf("controller not shaking after restart")
	}
}

func TestStopWhenIdleIsNoOp(t *testing.T) {
	pos := gamemath.Vec3{X: 5, Y: 6, Z: 7}
	before := pos
	ctrl := newTestController(&pos, DefaultOptions())

	ctrl.Stop()
	ctrl.Stop()

	if pos != before {
		t.Fatalf("Stop on idle controller moved the position: %+v -> %+v", before, pos)
	}
}

func TestUpdateWhileNotShakingIsNoOp(t *testing.T) {
	pos := gamemath.Vec3{X: 1}
	ctrl := newTestController(&pos, DefaultOptions())

	ctrl.Update(0.5)

	if pos.X != 1 || ctrl.Elapsed() != 0 {
		t.Fatalf("Update while idle mutated state: pos %+v elapsed %v", pos, ctrl.Elapsed())
	}
}

func TestAliasesAt(t *testing.T) {
	cases := []struct {
		name string
		freq float64
		tps  float64
		want bool
	}{
		{"half_rate", 30, 60, true},
		{"full_rate", 60, 60, true},
		{"near_half_rate", 29.9, 60, true},
		{"default_15_at_60", 15, 60, false},
		{"odd_frequency", 17, 60, false},
		{"zero_tps", 30, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := gamemath.Vec3{}
			ctrl := newTestController(&pos, Options{Frequency: c.freq})
			if got := ctrl.AliasesAt(c.tps); got != c.want {
				t.Fatalf("AliasesAt(%v) with freq %v = %v, want %v", c.tps, c.freq, got, c.want)
			}
		})
	}
}
