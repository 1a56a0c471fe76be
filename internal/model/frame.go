package model

import (
	"image"
	"image/color"
)

// Frame is one snapshot of per-LED colors plus a global brightness, the unit
// handed to the hardware encoder. Animations mutate the LED slice in place
// every tick rather than reallocating.
type Frame struct {
	brightness float64
	leds       []RGB
}

// NewFrame returns a frame of size LEDs, all black, with the given
// brightness clamped into [0, 1].
func NewFrame(brightness float64, size int) *Frame {
	return &Frame{
		brightness: clamp01(brightness),
		leds:       make([]RGB, size),
	}
}

// Brightness returns the brightness in [0, 1].
func (f *Frame) Brightness() float64 {
	return f.brightness
}

// SetBrightness sets the brightness, clamped into [0, 1].
func (f *Frame) SetBrightness(b float64) {
	f.brightness = clamp01(b)
}

// Brightness5 returns the brightness quantized to the 5-bit range 0..31 used
// by the APA102C's per-LED control byte. The SK9822 encodes brightness the
// same way (it current-limits instead of PWMing, but the wire value is
// identical), so both hardware variants share this one code path.
func (f *Frame) Brightness5() uint8 {
	return uint8(f.brightness * 31.0)
}

// Len returns the number of LEDs in the frame.
func (f *Frame) Len() int {
	return len(f.leds)
}

// Leds returns the LED buffer for in-place mutation.
func (f *Frame) Leds() []RGB {
	return f.leds
}

// At returns the color of LED i.
func (f *Frame) At(i int) RGB {
	return f.leds[i]
}

// Image renders the frame as a 1xN image with brightness premultiplied,
// suitable for display.Drawer sinks like the terminal preview.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(f.leds), 1))
	for i, led := range f.leds {
		c := led.Scale(f.brightness)
		img.SetNRGBA(i, 0, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
