package model

import (
	"math"
	"math/rand"
)

// Order enumerates the six possible channel orderings a strip's wiring may
// expect on the wire. APA102-family strips want BGR, most WS281x want GRB.
type Order int

const (
	OrderRGB Order = iota
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

// RGB is a plain 8-bit-per-channel color value. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a color from explicit channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// FromCode interprets the low 24 bits of code under the given channel order,
// e.g. FromCode(0xFF9911, OrderRGB) => R=0xFF G=0x99 B=0x11.
func FromCode(code uint32, o Order) RGB {
	hi := uint8(code >> 16)
	mid := uint8(code >> 8)
	lo := uint8(code)
	return FromTuple(hi, mid, lo, o)
}

// FromTuple builds a color from three channel bytes given in wire order o.
func FromTuple(a, b, c uint8, o Order) RGB {
	switch o {
	case OrderRGB:
		return RGB{a, b, c}
	case OrderRBG:
		return RGB{a, c, b}
	case OrderGRB:
		return RGB{b, a, c}
	case OrderGBR:
		return RGB{c, a, b}
	case OrderBRG:
		return RGB{b, c, a}
	default: // OrderBGR
		return RGB{c, b, a}
	}
}

// Tuple returns the channels rearranged into wire order o.
func (c RGB) Tuple(o Order) (uint8, uint8, uint8) {
	switch o {
	case OrderRGB:
		return c.R, c.G, c.B
	case OrderRBG:
		return c.R, c.B, c.G
	case OrderGRB:
		return c.G, c.R, c.B
	case OrderGBR:
		return c.G, c.B, c.R
	case OrderBRG:
		return c.B, c.R, c.G
	default: // OrderBGR
		return c.B, c.G, c.R
	}
}

// FromHSV converts an HSV triple to RGB using the standard six-sector
// piecewise formula. The hue wraps modulo 360 and may be negative or
// over-range; s and v are expected in [0, 1]. Channel values round by
// truncation after scaling to 0..255.
func FromHSV(h, s, v float64) RGB {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}

	c := v * s
	x := c * (1.0 - math.Abs(math.Mod(h/60.0, 2.0)-1.0))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60.0:
		r, g, b = c, x, 0
	case h < 120.0:
		r, g, b = x, c, 0
	case h < 180.0:
		r, g, b = 0, c, x
	case h < 240.0:
		r, g, b = 0, x, c
	case h < 300.0:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8((r + m) * 255.0),
		G: uint8((g + m) * 255.0),
		B: uint8((b + m) * 255.0),
	}
}

// IntoHSV converts the color to an HSV triple. The conversion is lossy due
// to 8-bit quantization. Black maps to (0, 0, 0).
func (c RGB) IntoHSV() (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = 60.0 * math.Mod((g-b)/delta, 6.0)
	case cmax == g:
		h = 60.0 * ((b-r)/delta + 2.0)
	default:
		h = 60.0 * ((r-g)/delta + 4.0)
	}

	if cmax != 0 {
		s = delta / cmax
	}
	v = cmax

	return h, s, v
}

// Scale multiplies each channel by factor, clamping the result into
// [0, 255]. Negative factors are treated as zero.
func (c RGB) Scale(factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	return RGB{
		R: scaleChan(c.R, factor),
		G: scaleChan(c.G, factor),
		B: scaleChan(c.B, factor),
	}
}

func scaleChan(v uint8, factor float64) uint8 {
	f := float64(v) * factor
	if f > 255.0 {
		f = 255.0
	}
	return uint8(f)
}

// RandomRGB returns a uniformly random color.
func RandomRGB() RGB {
	return RGB{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
	}
}

// RandomBrightRGB returns a random color with saturation and value near
// their maximums, avoiding the muddy tones plain RandomRGB can produce.
func RandomBrightRGB() RGB {
	return FromHSV(
		rand.Float64()*360.0,
		0.75+rand.Float64()*0.25,
		0.75+rand.Float64()*0.25,
	)
}
