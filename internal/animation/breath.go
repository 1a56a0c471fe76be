package animation

import (
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Breath animates a breathing display that walks through its color order,
// each color fading along a parabolic curve from black up to the full color
// and back down to black.
//
// The curve is produced by kinematic integration: a constant negative
// acceleration and an initial upward velocity are derived from the breath
// period so that the brightness position rises from 0 to 1 at the half
// period and returns to 0 at the full period:
//
//	acc = -8/T², vel0 = 4/T
type Breath struct {
	runtime   time.Duration
	remaining time.Duration
	frame     *model.Frame

	order ColorOrder
	ind   int
	color model.RGB

	acc  float64
	vel  float64
	vel0 float64
	pos  float64
}

// NewBreath creates a breathing animation running for runtime, with each
// breath (black to color to black) lasting breathDuration, over size LEDs.
func NewBreath(runtime, breathDuration time.Duration, brightness float64, size int, order ColorOrder) *Breath {
	t := breathDuration.Seconds()
	return &Breath{
		runtime:   runtime,
		remaining: runtime,
		frame:     model.NewFrame(brightness, size),

		order: order,
		color: order.First(),

		acc:  -8.0 / (t * t),
		vel:  4.0 / t,
		vel0: 4.0 / t,
	}
}

// Update integrates the pulse position and rewrites every LED to the
// current color scaled by it. All LEDs pulse in lockstep. When the position
// falls back to zero while still descending, the pulse restarts on the next
// color in the order.
func (b *Breath) Update(dt time.Duration) {
	b.remaining = clampSub(b.remaining, dt)

	s := dt.Seconds()
	b.vel += b.acc * s
	b.pos += b.vel * s

	if b.pos <= 0 && b.vel < 0 {
		b.pos = 0
		b.vel = b.vel0
		b.color, b.ind = b.order.Next(b.ind)
	}

	leds := b.frame.Leds()
	c := b.color.Scale(b.pos)
	for i := range leds {
		leds[i] = c
	}
}

func (b *Breath) Frame() *model.Frame { return b.frame }

func (b *Breath) TimeRemaining() time.Duration { return b.remaining }

func (b *Breath) SetBrightness(v float64) { b.frame.SetBrightness(v) }

// Reset restores the animation to its pre-run state.
func (b *Breath) Reset() {
	b.remaining = b.runtime
	b.ind = 0
	b.color = b.order.First()
	b.vel = b.vel0
	b.pos = 0
}
