package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-strand/internal/model"
)

func TestFrameStartsBlack(t *testing.T) {
	f := NewFrame(0.5, 8)
	assert.Equal(t, 8, f.Len())
	for i := 0; i < f.Len(); i++ {
		assert.Equal(t, RGB{}, f.At(i))
	}
}

var TestBrightnessQuantization = []struct {
	In     float64
	Want5  uint8
	WantF  float64
}{
	{0.0, 0, 0.0},
	{1.0, 31, 1.0},
	{0.5, 15, 0.5},
	{0.25, 7, 0.25},
	// Out-of-range input clamps before quantizing.
	{-1.0, 0, 0.0},
	{2.0, 31, 1.0},
}

func TestFrameBrightness5(t *testing.T) {
	for _, v := range TestBrightnessQuantization {
		f := NewFrame(v.In, 1)
		assert.Equal(t, v.WantF, f.Brightness(), "stored brightness for %v", v.In)
		assert.Equal(t, v.Want5, f.Brightness5(), "5-bit brightness for %v", v.In)
	}
}

func TestFrameInPlaceMutation(t *testing.T) {
	f := NewFrame(1, 4)
	leds := f.Leds()
	leds[2] = NewRGB(1, 2, 3)
	assert.Equal(t, NewRGB(1, 2, 3), f.At(2), "mutation through the slice is visible")
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(0.5, 2)
	f.Leds()[0] = NewRGB(200, 100, 50)

	img := f.Image()
	assert.Equal(t, 2, img.Bounds().Dx())

	c := img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(100), c.R, "brightness premultiplied")
	assert.Equal(t, uint8(50), c.G)
	assert.Equal(t, uint8(25), c.B)
}
