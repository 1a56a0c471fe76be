package draw

import (
	"periph.io/x/conn/v3/gpio"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

// PinWriter is the single pin primitive the bit-banged protocol needs.
// periph's gpio.PinIO satisfies it; tests substitute a recorder. Write
// failures are not observable on a fire-and-forget output pin, so the
// encoder ignores the returned error.
type PinWriter interface {
	Out(l gpio.Level) error
}

// EndFramePolicy selects how many zero bytes close a frame. The APA102
// family needs extra clock pulses after the payload so the last LEDs latch;
// how many is genuinely disputed:
//
//   - EndFrameLegacy emits len>>4 bytes, matching the original controller.
//     It undercounts when len is not a multiple of 16.
//   - EndFrameCeil emits ceil(len/16) bytes.
//   - EndFrameDatasheet emits ceil(len/32) bytes, one clock pulse per two
//     LEDs, per the datasheet analysis of the SK9822/APA102 shift behavior.
//
// The policy is configurable rather than silently fixed so deployments
// tuned against the legacy behavior keep working.
type EndFramePolicy int

const (
	EndFrameLegacy EndFramePolicy = iota
	EndFrameCeil
	EndFrameDatasheet
)

// Pad returns the number of zero bytes the policy emits for a strip of n
// LEDs.
func (p EndFramePolicy) Pad(n int) int {
	switch p {
	case EndFrameCeil:
		return (n + 15) / 16
	case EndFrameDatasheet:
		return (n + 31) / 32
	default:
		return n >> 4
	}
}

// APA102Draw drives APA102C LEDs by bit-banging their two-wire clocked
// protocol over a data and a clock pin.
//
// APA102C brightness below full runs the internal PWM at 440Hz and can
// visibly flicker; the SK9822 clone current-limits instead and dims
// cleanly. The wire format is identical either way.
type APA102Draw struct {
	queueCore

	data  PinWriter
	clock PinWriter

	policy EndFramePolicy
}

// SK9822Draw drives SK9822 LEDs, which speak a compatible protocol.
type SK9822Draw = APA102Draw

// NewAPA102 creates a driver over the given data and clock pins, paced by t.
func NewAPA102(data, clock PinWriter, t *timer.Timer, policy EndFramePolicy) *APA102Draw {
	return &APA102Draw{
		queueCore: queueCore{timer: t, stats: NewDrawStats()},

		data:   data,
		clock:  clock,
		policy: policy,
	}
}

// Run drives every queued animation to completion, writing each produced
// frame to the strip.
func (d *APA102Draw) Run() []animation.Animation {
	return d.run(d.writeFrame)
}

// Stop forces every LED in a strip of the given length to zero brightness
// and zero color with one full frame write. It does not consult the queue.
func (d *APA102Draw) Stop(size int) {
	d.startFrame()

	for i := 0; i < size; i++ {
		d.writeByte(0xE0)
		d.writeByte(0x00)
		d.writeByte(0x00)
		d.writeByte(0x00)
	}

	d.endFrame(size)
}

// Close blanks the longest strip ever driven so the LEDs are not left lit.
func (d *APA102Draw) Close() error {
	d.Stop(d.knownLen)
	return nil
}

// writeFrame serializes one frame: a four-zero-byte start frame, then per
// LED a 0b111xxxxx control byte carrying the 5-bit brightness followed by
// the color in BGR order as the datasheet defines, then the end frame.
func (d *APA102Draw) writeFrame(f *model.Frame) {
	d.startFrame()

	b := 0xE0 | f.Brightness5()
	for _, led := range f.Leds() {
		d.writeByte(b)
		c0, c1, c2 := led.Tuple(model.OrderBGR)
		d.writeByte(c0)
		d.writeByte(c1)
		d.writeByte(c2)
	}

	d.endFrame(f.Len())
}

// startFrame pulls both lines low and clocks out four zero bytes to mark
// the start of a message.
func (d *APA102Draw) startFrame() {
	d.setPinsLow()

	d.writeByte(0x00)
	d.writeByte(0x00)
	d.writeByte(0x00)
	d.writeByte(0x00)
}

// endFrame clocks out enough zero bytes for the last LED's data to latch.
func (d *APA102Draw) endFrame(size int) {
	for i := 0; i < d.policy.Pad(size); i++ {
		d.writeByte(0x00)
	}
}

// writeByte shifts one byte out MSB first: set the data line to the bit,
// then pulse the clock high and low.
func (d *APA102Draw) writeByte(b uint8) {
	for bit := 7; bit >= 0; bit-- {
		_ = d.data.Out(gpio.Level(b>>uint(bit)&1 != 0))
		_ = d.clock.Out(gpio.High)
		_ = d.clock.Out(gpio.Low)
	}
}

func (d *APA102Draw) setPinsLow() {
	_ = d.data.Out(gpio.Low)
	_ = d.clock.Out(gpio.Low)
}
