package animation

import (
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Solid holds every LED on a single constant color for its runtime.
type Solid struct {
	runtime   time.Duration
	remaining time.Duration
	frame     *model.Frame

	color model.RGB
}

func NewSolid(runtime time.Duration, brightness float64, size int, color model.RGB) *Solid {
	s := &Solid{
		runtime:   runtime,
		remaining: runtime,
		frame:     model.NewFrame(brightness, size),
		color:     color,
	}
	s.Update(0)
	return s
}

func (s *Solid) Update(dt time.Duration) {
	s.remaining = clampSub(s.remaining, dt)

	leds := s.frame.Leds()
	for i := range leds {
		leds[i] = s.color
	}
}

func (s *Solid) Frame() *model.Frame { return s.frame }

func (s *Solid) TimeRemaining() time.Duration { return s.remaining }

func (s *Solid) SetBrightness(v float64) { s.frame.SetBrightness(v) }

func (s *Solid) Reset() {
	s.remaining = s.runtime
}
