// Package shake offsets a camera position in a random (or fixed) direction
// repeatedly over a set length of time to create a screen shake effect.
//
// The amplitude of the shaking is the product of two curves: a sin wave with
// an adjustable frequency, and an envelope that goes from 0 to 1 and back
// smoothly. The envelope rises along an inverse exponential, then decreases
// along a flipped smootherstep sigmoid.
package shake

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/shakecam/gamemath"
)

const (
	// riseScale corrects for the rise exponential never exactly reaching 1,
	// so the envelope equals 1.0 at the end of the acceleration phase.
	riseScale = 1.0001

	// falloffGradient is the peak gradient of the smootherstep curve; it
	// relates the falloff rate to the falloff duration.
	falloffGradient = 15.0 / 8.0
)

// riseExponent = ln(0.0001/1.0001), the decay constant of the rise curve.
var riseExponent = math.Log(0.0001 / 1.0001)

// Options configures a Controller. Use DefaultOptions as a starting point;
// the zero value is valid but gives a zero-amplitude, zero-frequency shake.
type Options struct {
	// MaxAmplitude is the largest possible world-space offset.
	MaxAmplitude float64

	// FalloffDuration is the length of time in seconds it takes the shaking
	// to reach 0 after reaching the maximum. Negative disables falloff.
	FalloffDuration float64

	// AccelerationDuration is the length of time in seconds it takes the
	// shaking to reach max amplitude. 0 starts at max amplitude.
	AccelerationDuration float64

	// Frequency is the number of oscillation peaks per second. Avoid making
	// it a multiple of half the tick rate (e.g. at 60 tps avoid 30, 60, 90),
	// which aliases into visually stuttery shaking.
	Frequency float64

	// DirectionDeg is an optional fixed direction in degrees. Nil means a
	// fresh random direction is sampled every update.
	DirectionDeg *float64

	// Rand is the source for random directions. Nil means a time-seeded
	// source; inject a seeded one for deterministic output.
	Rand *rand.Rand
}

// DefaultOptions returns the standard shake configuration: one second up,
// one second down, 15 peaks per second, unit amplitude, random direction.
func DefaultOptions() Options {
	return Options{
		MaxAmplitude:         1.0,
		FalloffDuration:      1.0,
		AccelerationDuration: 1.0,
		Frequency:            15.0,
	}
}

// Controller mutates an externally owned camera position to produce a shake
// effect. It never owns the position: every offset it applies is tracked and
// removed again, so its total footprint on the position is always reversible.
//
// The controller is single-writer by convention. Drive Update from the same
// loop that owns the camera position, once per frame.
type Controller struct {
	pos *gamemath.Vec3

	maxAmplitude         float64
	falloffDuration      float64
	accelerationDuration float64
	frequency            float64
	directionDeg         *float64
	rng                  *rand.Rand

	shaking    bool
	elapsed    float64
	lastOffset gamemath.Vec3
}

// NewController binds a controller to a camera position. The position pointer
// must stay valid for the controller's lifetime.
func NewController(pos *gamemath.Vec3, opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Controller{
		pos:             pos,
		maxAmplitude:    opts.MaxAmplitude,
		falloffDuration: opts.FalloffDuration,
		frequency:       opts.Frequency,
		rng:             rng,
	}
	c.SetAccelerationDuration(opts.AccelerationDuration)
	if opts.DirectionDeg != nil {
		c.SetDirection(*opts.DirectionDeg)
	}
	return c
}

// Shaking reports whether the controller is currently shaking the camera.
func (c *Controller) Shaking() bool {
	return c.shaking
}

// Offset returns the offset currently applied to the camera position. Other
// writers that move the same position mid-shake must account for it: subtract
// before editing, add back after.
func (c *Controller) Offset() gamemath.Vec3 {
	return c.lastOffset
}

// Elapsed returns the time in seconds since Start.
func (c *Controller) Elapsed() float64 {
	return c.elapsed
}

// MaxAmplitude returns the largest possible world-space offset.
func (c *Controller) MaxAmplitude() float64 {
	return c.maxAmplitude
}

// SetMaxAmplitude sets the largest possible world-space offset.
func (c *Controller) SetMaxAmplitude(a float64) {
	c.maxAmplitude = a
}

// Frequency returns the number of oscillation peaks per second.
func (c *Controller) Frequency() float64 {
	return c.frequency
}

// SetFrequency sets the number of oscillation peaks per second.
func (c *Controller) SetFrequency(f float64) {
	c.frequency = f
}

// AliasesAt reports whether the configured frequency lands near a multiple
// of half the given tick rate, which produces visually aliased shaking.
// A quality caution for callers, not an error.
func (c *Controller) AliasesAt(ticksPerSecond float64) bool {
	if ticksPerSecond <= 0 || c.frequency == 0 {
		return false
	}
	half := ticksPerSecond / 2
	ratio := c.frequency / half
	return math.Abs(ratio-math.Round(ratio)) < 0.05 && math.Round(ratio) != 0
}

// Direction returns the fixed shake direction in degrees, if one is set.
func (c *Controller) Direction() (deg float64, ok bool) {
	if c.directionDeg == nil {
		return 0, false
	}
	return *c.directionDeg, true
}

// SetDirection fixes the shake direction to the given angle in degrees,
// making the output fully deterministic.
func (c *Controller) SetDirection(deg float64) {
	d := deg
	c.directionDeg = &d
}

// ClearDirection returns to sampling a fresh random direction every update.
func (c *Controller) ClearDirection() {
	c.directionDeg = nil
}

// TotalDuration returns the length of the shake in seconds. If falloff is
// disabled it is just the acceleration duration.
func (c *Controller) TotalDuration() float64 {
	if c.falloffDuration < 0 {
		return c.accelerationDuration
	}
	return c.accelerationDuration + c.falloffDuration
}

// SetTotalDuration rescales the shake to a new total length.
//
// A duration <= 0 disables falloff. While falloff is disabled only the
// acceleration duration is set; falloff stays disabled. Otherwise both the
// acceleration and falloff durations are scaled, preserving their ratio.
func (c *Controller) SetTotalDuration(d float64) {
	switch {
	case d <= 0:
		c.falloffDuration = -1.0
	case c.falloffDuration < 0:
		c.accelerationDuration = d
	default:
		ratio := d / c.TotalDuration()
		c.accelerationDuration *= ratio
		c.falloffDuration *= ratio
	}
}

// AccelerationDuration returns the length of time in seconds it takes the
// shaking to reach max amplitude.
func (c *Controller) AccelerationDuration() float64 {
	return c.accelerationDuration
}

// SetAccelerationDuration sets the rise time. Negative values clamp to 0,
// which starts the shake at max amplitude.
func (c *Controller) SetAccelerationDuration(d float64) {
	if d < 0 {
		d = 0
	}
	c.accelerationDuration = d
}

// Acceleration returns the inverse of the acceleration duration, or 0 when
// the duration is 0.
func (c *Controller) Acceleration() float64 {
	if c.accelerationDuration <= 0 {
		return 0
	}
	return 1 / c.accelerationDuration
}

// SetAcceleration sets the inverse of the acceleration duration. Values <= 0
// set the duration to 0, starting the shake at max amplitude.
func (c *Controller) SetAcceleration(a float64) {
	if a <= 0 {
		c.accelerationDuration = 0
		return
	}
	c.accelerationDuration = 1 / a
}

// FalloffDuration returns the decay time in seconds. Negative means falloff
// is disabled and the amplitude holds at max.
func (c *Controller) FalloffDuration() float64 {
	return c.falloffDuration
}

// SetFalloffDuration sets the decay time. Any negative value disables
// falloff.
func (c *Controller) SetFalloffDuration(d float64) {
	c.falloffDuration = d
}

// Falloff returns the maximum gradient of the amplitude decay, the gradient
// at the inflection point of the smootherstep curve. It is inversely
// proportional to the falloff duration by a factor of 15/8. Returns -1 when
// falloff is disabled.
func (c *Controller) Falloff() float64 {
	if c.falloffDuration < 0 {
		return -1.0
	}
	return falloffGradient / c.falloffDuration
}

// SetFalloff sets the maximum gradient of the amplitude decay. Values <= 0
// disable falloff.
func (c *Controller) SetFalloff(f float64) {
	if f <= 0 {
		c.falloffDuration = -1.0
		return
	}
	c.falloffDuration = falloffGradient / f
}

// riseAmp is the growing half of the envelope. t is scaled time in [0, 1].
func riseAmp(t float64) float64 {
	return riseScale - riseScale*math.Exp(riseExponent*t)
}

// falloffAmp is the decaying half of the envelope, a flipped smootherstep.
// t is scaled time in [0, 1].
func falloffAmp(t float64) float64 {
	return 1 - t*t*t*(t*(t*6.0-15.0)+10.0)
}

// Envelope returns the attack/decay factor in [0, 1] for an elapsed shake
// time. A zero acceleration duration skips the rise phase; with falloff
// disabled the envelope holds at 1 past the rise.
func (c *Controller) Envelope(t float64) float64 {
	if c.accelerationDuration > 0 && t <= c.accelerationDuration {
		return riseAmp(t / c.accelerationDuration)
	}

	if c.falloffDuration < 0 {
		return 1.0
	}

	if t <= c.TotalDuration() {
		return falloffAmp((t - c.accelerationDuration) / c.falloffDuration)
	}

	return 0.0
}

// CurrentAmplitude returns the signed offset magnitude for the current
// elapsed time: envelope times max amplitude times the oscillator. The sign
// carries through to the offset, so the shake crosses back and forth over
// the resting position.
func (c *Controller) CurrentAmplitude() float64 {
	sin := math.Sin(c.frequency * 2.0 * math.Pi * c.elapsed)
	return c.Envelope(c.elapsed) * c.maxAmplitude * sin
}

// reset clears the transient shake state. It does not stop or start the
// shake, and it does not touch the camera position.
func (c *Controller) reset() {
	c.elapsed = 0
	c.lastOffset = gamemath.Vec3{}
}

// Start begins the shake. Calling it while already shaking restarts the
// envelope from zero.
func (c *Controller) Start() {
	c.reset()
	c.shaking = true
}

// Stop instantly ends the shake, removing the last applied offset so the
// camera position returns to its unshaken value. Safe to call when not
// shaking.
func (c *Controller) Stop() {
	*c.pos = c.pos.Sub(c.lastOffset)
	c.reset()
	c.shaking = false
}

// Update advances the shake by dt seconds and applies the new offset to the
// camera position. Call once per frame; a no-op while not shaking. The shake
// stops itself once the total duration has elapsed.
func (c *Controller) Update(dt float64) {
	if !c.shaking {
		return
	}

	c.elapsed += dt
	amplitude := c.CurrentAmplitude()

	var angle float64
	if c.directionDeg != nil {
		angle = *c.directionDeg * (math.Pi / 180)
	} else {
		angle = c.rng.Float64() * 2 * math.Pi
	}

	offset := gamemath.Vec3{
		X: amplitude * math.Sin(angle),
		Y: amplitude * math.Sin(angle+math.Pi/2),
	}

	*c.pos = c.pos.Add(offset.Sub(c.lastOffset))
	c.lastOffset = offset

	if c.elapsed >= c.TotalDuration() {
		c.Stop()
	}
}
