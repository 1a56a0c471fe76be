package chunk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-strand/internal/model"
)

func TestGenerateTwoFramesOneLED(t *testing.T) {
	colors := []model.RGB{
		model.NewRGB(10, 20, 30),
		model.NewRGB(40, 50, 60),
	}
	i := 0
	cb := func() Frame {
		f := Frame{Duration: 0.5, Pixels: []model.RGB{colors[i]}}
		i++
		return f
	}

	opts, err := NewGeneratorOptions(cb, 2, false)
	assert.NoError(t, err)

	label, payload := Generate(opts, 0)

	assert.Equal(t, "ANI0", label)
	// 4 header bytes + 2 frames * (2 duration bytes + 1 led * 3).
	assert.Len(t, payload, 14)

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(payload[0:2]), "frame size")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(payload[2:4]), "size mask: non-looping count")

	// Frame 0: Q15 duration then r,g,b.
	assert.Equal(t, uint16(16384), binary.LittleEndian.Uint16(payload[4:6]), "0.5s in Q15")
	assert.Equal(t, []byte{10, 20, 30}, payload[6:9])

	assert.Equal(t, uint16(16384), binary.LittleEndian.Uint16(payload[9:11]))
	assert.Equal(t, []byte{40, 50, 60}, payload[11:14])
}

func TestGeneratorLoopingFlag(t *testing.T) {
	cb := func() Frame { return Frame{Duration: 0.1, Pixels: []model.RGB{{}}} }

	opts, err := NewGeneratorOptions(cb, 3, true)
	assert.NoError(t, err)

	_, payload := Generate(opts, 1)
	mask := binary.LittleEndian.Uint16(payload[2:4])
	assert.Equal(t, uint16(1<<15|3), mask, "bit 15 carries the looping flag")
}

func TestGeneratorRejectsOversizedCount(t *testing.T) {
	cb := func() Frame { return Frame{} }

	_, err := NewGeneratorOptions(cb, 0x7FFF, false)
	assert.NoError(t, err, "15-bit max is allowed")

	_, err = NewGeneratorOptions(cb, 0x8000, false)
	assert.Error(t, err, "counts beyond 15 bits must fail fast")
}

var TestLabelIndices = []struct {
	Index uint16
	Want  string
}{
	{0x0, "ANI0"},
	{0x3, "ANI3"},
	{0xA, "ANIA"},
	{0x2A, "AN2A"},
}

func TestLabel(t *testing.T) {
	for _, v := range TestLabelIndices {
		assert.Equal(t, v.Want, Label(v.Index), "index %#x", v.Index)
	}
}

func TestFloatToQ15(t *testing.T) {
	assert.Equal(t, int16(16384), floatToQ15(0.5))
	assert.Equal(t, int16(1), floatToQ15(1.0/32768.0))
	assert.Equal(t, int16(0), floatToQ15(0))
	// Truncation, not rounding.
	assert.Equal(t, int16(3276), floatToQ15(0.1))
}

func TestRIFFContainer(t *testing.T) {
	w := NewRIFFWriter("ANIM")
	w.AddChunk("ANI0", []byte{1, 2, 3, 4})

	out := w.Bytes()

	assert.Equal(t, []byte("RIFF"), out[:4])
	assert.Equal(t, uint32(4+8+4), binary.LittleEndian.Uint32(out[4:8]), "form type + chunk header + data")
	assert.Equal(t, []byte("ANIM"), out[8:12])
	assert.Equal(t, []byte("ANI0"), out[12:16])
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(out[16:20]))
	assert.Equal(t, []byte{1, 2, 3, 4}, out[20:24])
	assert.Len(t, out, 24)
}

func TestRIFFOddChunkPadding(t *testing.T) {
	w := NewRIFFWriter("ANIM")
	w.AddChunk("ANI0", []byte{1, 2, 3})

	out := w.Bytes()
	assert.Len(t, out, 24, "odd chunk data padded to even length")
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(out[16:20]), "size field records the unpadded length")
	assert.Equal(t, byte(0), out[23], "pad byte")
}
