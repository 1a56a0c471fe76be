package animation

import (
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Cycle steps through its color order with a hard switch every cycle
// period, no fading in between.
type Cycle struct {
	runtime   time.Duration
	remaining time.Duration
	frame     *model.Frame

	order ColorOrder
	ind   int
	color model.RGB

	period          time.Duration
	periodRemaining time.Duration
}

// NewCycle creates a cycling animation running for runtime that switches
// colors every period.
func NewCycle(runtime, period time.Duration, brightness float64, size int, order ColorOrder) *Cycle {
	c := &Cycle{
		runtime:   runtime,
		remaining: runtime,
		frame:     model.NewFrame(brightness, size),

		order: order,
		color: order.First(),

		period:          period,
		periodRemaining: period,
	}
	c.fill()
	return c
}

// Update only rewrites the frame when the period expires and a new color is
// due; in between, the frame already holds the current color.
func (c *Cycle) Update(dt time.Duration) {
	c.remaining = clampSub(c.remaining, dt)

	if c.periodRemaining > dt {
		c.periodRemaining -= dt
		return
	}

	// Carry the overshoot into the next period so long ticks don't drift
	// the cycle cadence.
	over := dt - c.periodRemaining
	if over >= c.period {
		over = c.period
	}
	c.periodRemaining = c.period - over

	c.color, c.ind = c.order.Next(c.ind)
	c.fill()
}

func (c *Cycle) fill() {
	leds := c.frame.Leds()
	for i := range leds {
		leds[i] = c.color
	}
}

func (c *Cycle) Frame() *model.Frame { return c.frame }

func (c *Cycle) TimeRemaining() time.Duration { return c.remaining }

func (c *Cycle) SetBrightness(v float64) { c.frame.SetBrightness(v) }

func (c *Cycle) Reset() {
	c.remaining = c.runtime
	c.ind = 0
	c.color = c.order.First()
	c.periodRemaining = c.period
	c.fill()
}
