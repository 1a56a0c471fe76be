package animation

import (
	"math"
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Rainbow rotates a hue gradient across the strip. The base hue advances by
// 360°/rainbowLength per second, and each LED adds an angular offset derived
// from its index, so the gradient both spans the strip spatially and rotates
// over time.
type Rainbow struct {
	runtime   time.Duration
	remaining time.Duration
	frame     *model.Frame

	hue float64
	sat float64
	val float64
	dh  float64

	arc  float64
	step int
}

// NewRainbow creates a rainbow animation running for runtime.
//
// rainbowLength is how long the rainbow takes to cycle fully through one
// LED. sat and val are the HSV saturation and value used for every
// generated color. arc is the fraction of the 360° hue wheel spread across
// the whole strip: 1 shows one full rainbow, 2 shows two, 0 keeps all LEDs
// on a single synchronized hue that still rotates over time. step is the
// number of consecutive LEDs that share a color before it moves on, e.g.
// step 2 turns [1,2,3,4] into [1,1,2,2].
func NewRainbow(runtime, rainbowLength time.Duration, brightness, sat, val, arc float64, step, size int) *Rainbow {
	return &Rainbow{
		runtime:   runtime,
		remaining: runtime,
		frame:     model.NewFrame(brightness, size),

		sat: clampUnit(sat),
		val: clampUnit(val),
		dh:  360.0 / rainbowLength.Seconds(),

		arc:  arc,
		step: step,
	}
}

func (r *Rainbow) Update(dt time.Duration) {
	r.remaining = clampSub(r.remaining, dt)

	r.hue += r.dh * dt.Seconds()
	if r.hue >= 360.0 {
		r.hue -= 360.0
	}

	leds := r.frame.Leds()
	length := float64(len(leds))
	for i := range leds {
		off := math.Floor(float64(i)/float64(r.step)) * float64(r.step)
		off = off / length * 360.0 * r.arc
		leds[i] = model.FromHSV(r.hue+off, r.sat, r.val)
	}
}

func (r *Rainbow) Frame() *model.Frame { return r.frame }

func (r *Rainbow) TimeRemaining() time.Duration { return r.remaining }

func (r *Rainbow) SetBrightness(v float64) { r.frame.SetBrightness(v) }

func (r *Rainbow) Reset() {
	r.remaining = r.runtime
	r.hue = 0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
