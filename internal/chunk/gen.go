// Package chunk bakes procedural animations into the binary ANIM chunk
// format consumed by the playback firmware, and wraps them in a RIFF
// container.
package chunk

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

// maxFrameCount is the capacity of the size mask's low 15 bits; bit 15
// carries the looping flag.
const maxFrameCount = 0x7FFF

// Frame is one baked animation frame: how long it is held, in seconds, and
// its pixel colors. Distinct from model.Frame, which carries a live
// brightness instead of a duration.
type Frame struct {
	Duration float64
	Pixels   []model.RGB
}

// GeneratorOptions configures one baked animation: a callback producing
// successive frames, how many frames to pull from it, and whether playback
// loops.
type GeneratorOptions struct {
	callback func() Frame
	sizeMask uint16
}

// NewGeneratorOptions validates and builds generator options. The frame
// count must fit in the 15-bit size mask; this is a build-time tool, so
// callers abort on error.
func NewGeneratorOptions(callback func() Frame, count uint16, looping bool) (GeneratorOptions, error) {
	if count > maxFrameCount {
		return GeneratorOptions{}, fmt.Errorf("frame count %d exceeds the size mask's 15-bit capacity (%d)", count, maxFrameCount)
	}
	mask := count
	if looping {
		mask |= 1 << 15
	}
	return GeneratorOptions{callback: callback, sizeMask: mask}, nil
}

// Label returns the four-character chunk tag for animation index: "ANIM"
// with its tail overwritten by the uppercase hex index, e.g. index 0 =>
// "ANI0", index 0x2A => "AN2A".
func Label(index uint16) string {
	hex := strings.ToUpper(strconv.FormatUint(uint64(index), 16))
	label := []byte("ANIM")
	copy(label[4-len(hex):], hex)
	return string(label)
}

// Generate pulls every frame from the callback and packs the chunk payload:
//
//	u16 LE frame size (LEDs per frame)
//	u16 LE size mask  (bit 15 looping, low 15 bits frame count)
//	per frame: i16 LE duration in Q15 fixed point, then r,g,b per LED
//
// The frame size is taken from the first frame; the callback is trusted to
// produce uniformly sized frames. Returns the chunk label and payload.
func Generate(opts GeneratorOptions, index uint16) (string, []byte) {
	count := int(opts.sizeMask & maxFrameCount)

	frames := make([]Frame, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, opts.callback())
	}

	frameSize := 0
	if count > 0 {
		frameSize = len(frames[0].Pixels)
	}

	payload := make([]byte, 0, 4+count*(2+frameSize*3))
	payload = append(payload, 0, 0, 0, 0)
	binary.LittleEndian.PutUint16(payload[0:2], uint16(frameSize))
	binary.LittleEndian.PutUint16(payload[2:4], opts.sizeMask)

	for _, f := range frames {
		var dur [2]byte
		binary.LittleEndian.PutUint16(dur[:], uint16(floatToQ15(f.Duration)))
		payload = append(payload, dur[0], dur[1])

		for _, p := range f.Pixels {
			payload = append(payload, p.R, p.G, p.B)
		}
	}

	return Label(index), payload
}

// floatToQ15 converts a duration in seconds to signed Q15 fixed point with
// 15 fractional bits, truncating. Durations of a second or more overflow;
// baked frames are expected to be much shorter.
func floatToQ15(x float64) int16 {
	return int16(int32(x * (1 << 15)))
}
