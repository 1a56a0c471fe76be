package animation

import (
	"math"
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Strobe flickers all LEDs between a fixed color and black, PWM-style. The
// period is the time before the pattern repeats and the duty cycle is the
// fraction of each period, in [0, 1), during which the LEDs are lit.
type Strobe struct {
	runtime   time.Duration
	remaining time.Duration
	frame     *model.Frame

	period float64
	duty   float64
	color  model.RGB

	time float64
}

// NewStrobe creates a strobe animation running for runtime with the given
// period, typically well under a second, and duty cycle.
func NewStrobe(runtime time.Duration, brightness float64, size int, period time.Duration, duty float64, color model.RGB) *Strobe {
	return &Strobe{
		runtime:   runtime,
		remaining: runtime,
		frame:     model.NewFrame(brightness, size),

		period: period.Seconds(),
		duty:   clampUnit(duty),
		color:  color,
	}
}

func (s *Strobe) Update(dt time.Duration) {
	s.remaining = clampSub(s.remaining, dt)

	// Accumulated phase, wrapped into [0, period).
	s.time = math.Mod(s.time+dt.Seconds(), s.period)

	c := model.RGB{}
	if s.time/s.period < s.duty {
		c = s.color
	}

	leds := s.frame.Leds()
	for i := range leds {
		leds[i] = c
	}
}

func (s *Strobe) Frame() *model.Frame { return s.frame }

func (s *Strobe) TimeRemaining() time.Duration { return s.remaining }

func (s *Strobe) SetBrightness(v float64) { s.frame.SetBrightness(v) }

func (s *Strobe) Reset() {
	s.remaining = s.runtime
	s.time = 0
}
