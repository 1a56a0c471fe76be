// Package animation implements the time-driven LED animations. Each
// animation owns one frame, advances its internal state by an elapsed-time
// delta every tick, and reports the time left before the driver should move
// on to the next queued animation.
package animation

import (
	"time"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// Animation is the contract shared by all variants. Update advances the
// internal state by exactly dt and clamps the remaining runtime at zero;
// TimeRemaining is the driver's sole termination signal. Numeric parameters
// are trusted: non-positive periods lead to undefined numeric behavior, not
// a runtime failure.
type Animation interface {
	// Update advances the animation by dt and rewrites the frame in place.
	Update(dt time.Duration)
	// Frame returns the current frame. Callers must not retain it past the
	// animation's lifetime.
	Frame() *model.Frame
	// TimeRemaining reports how long the animation will keep running.
	TimeRemaining() time.Duration
	// Reset restores the animation to its pre-run state.
	Reset()
	// SetBrightness updates the owned frame's brightness.
	SetBrightness(b float64)
}

// ColorOrder selects how an animation walks its color sequence: through an
// explicit palette (wrapping), or by generating random colors on demand.
// The palette is passed in by the caller rather than read from package
// state, so two animations can run different palettes side by side.
type ColorOrder struct {
	// Colors is the ordered palette. When nil, colors are random.
	Colors []model.RGB
	// Bright restricts random colors to high saturation and value. Only
	// meaningful when Colors is nil.
	Bright bool
}

// First returns the starting color for the order.
func (o ColorOrder) First() model.RGB {
	if len(o.Colors) > 0 {
		return o.Colors[0]
	}
	return o.random()
}

// Next returns the color following index ind, along with the new index.
func (o ColorOrder) Next(ind int) (model.RGB, int) {
	if len(o.Colors) > 0 {
		ind = (ind + 1) % len(o.Colors)
		return o.Colors[ind], ind
	}
	return o.random(), ind
}

func (o ColorOrder) random() model.RGB {
	if o.Bright {
		return model.RandomBrightRGB()
	}
	return model.RandomRGB()
}

// clampSub subtracts dt from remaining, clamping at zero.
func clampSub(remaining, dt time.Duration) time.Duration {
	if remaining <= dt {
		return 0
	}
	return remaining - dt
}
