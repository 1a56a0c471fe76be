package model_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-strand/internal/model"
)

var TestOrderPermutations = []struct {
	Order   Order
	Name    string
	R, G, B uint8
}{
	// FromTuple(0,1,2, order) should land each byte on the channel the
	// order names.
	{OrderRGB, "RGB", 0, 1, 2},
	{OrderRBG, "RBG", 0, 2, 1},
	{OrderGRB, "GRB", 1, 0, 2},
	{OrderGBR, "GBR", 2, 0, 1},
	{OrderBRG, "BRG", 1, 2, 0},
	{OrderBGR, "BGR", 2, 1, 0},
}

func TestChannelOrders(t *testing.T) {
	for _, v := range TestOrderPermutations {
		t.Run(v.Name, func(t *testing.T) {
			c := FromTuple(0, 1, 2, v.Order)
			assert.Equal(t, v.R, c.R, "red")
			assert.Equal(t, v.G, c.G, "green")
			assert.Equal(t, v.B, c.B, "blue")

			// Round trip back into wire order.
			a, b, cc := c.Tuple(v.Order)
			assert.Equal(t, [3]uint8{0, 1, 2}, [3]uint8{a, b, cc})
		})
	}
}

func TestFromCode(t *testing.T) {
	c := FromCode(0xFF9911, OrderRGB)
	assert.Equal(t, NewRGB(0xFF, 0x99, 0x11), c)

	c = FromCode(0xFF9911, OrderBGR)
	assert.Equal(t, NewRGB(0x11, 0x99, 0xFF), c)
}

func TestHSVRoundTrip(t *testing.T) {
	vals := []uint8{0, 128, 255}
	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				in := NewRGB(r, g, b)
				t.Run(fmt.Sprintf("%02X%02X%02X", r, g, b), func(t *testing.T) {
					out := FromHSV(in.IntoHSV())
					// 8-bit quantization allows each channel to drift by 1.
					assert.InDelta(t, float64(in.R), float64(out.R), 1, "red")
					assert.InDelta(t, float64(in.G), float64(out.G), 1, "green")
					assert.InDelta(t, float64(in.B), float64(out.B), 1, "blue")
				})
			}
		}
	}
}

func TestHueWraparound(t *testing.T) {
	for h := -360.0; h <= 720.0; h += 15.0 {
		base := FromHSV(h, 1, 1)
		assert.Equal(t, base, FromHSV(h+360, 1, 1), "h=%v +360", h)
		assert.Equal(t, base, FromHSV(h-360, 1, 1), "h=%v -360", h)
	}
}

func TestIntoHSVBlack(t *testing.T) {
	h, s, v := RGB{}.IntoHSV()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 0.0, v)
}

func TestScaleClamp(t *testing.T) {
	c := NewRGB(200, 100, 0)

	assert.Equal(t, RGB{}, c.Scale(0))
	assert.Equal(t, c, c.Scale(1))
	assert.Equal(t, RGB{}, c.Scale(-3), "negative factors clamp to zero")

	big := c.Scale(1000)
	assert.Equal(t, uint8(255), big.R)
	assert.Equal(t, uint8(255), big.G)
	assert.Equal(t, uint8(0), big.B)

	half := c.Scale(0.5)
	assert.Equal(t, uint8(100), half.R)
	assert.Equal(t, uint8(50), half.G)
}
