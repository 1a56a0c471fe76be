package draw

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

func TestSPIDrawWritesFrames(t *testing.T) {
	buf := bytes.Buffer{}
	d, err := NewSPIFromPort(spitest.NewRecordRaw(&buf), 4, fakeTimer(10*time.Millisecond))
	assert.NoError(t, err)

	f := model.NewFrame(1, 4)
	f.Leds()[0] = model.NewRGB(255, 0, 0)
	d.writeFrame(f)

	// The device encodes a start frame, four LED words and an end frame;
	// the exact trailer length belongs to the device driver, the start
	// must be the four-zero-byte marker.
	out := buf.Bytes()
	assert.GreaterOrEqual(t, len(out), 4+4*4)
	assert.Equal(t, []byte{0, 0, 0, 0}, out[:4])
}

func TestSPIDrawRun(t *testing.T) {
	buf := bytes.Buffer{}
	d, err := NewSPIFromPort(spitest.NewRecordRaw(&buf), 2, fakeTimer(10*time.Millisecond))
	assert.NoError(t, err)

	d.PushQueue(animation.NewSolid(50*time.Millisecond, 1, 2, model.NewRGB(0, 255, 0)))
	d.Run()

	assert.Equal(t, 5, d.Stats().Frames())
	assert.NotZero(t, buf.Len())
}

func TestInterruptStopsRunEarly(t *testing.T) {
	// The clock flips the interrupt flag mid-run, standing in for a signal
	// handler goroutine. The loop must let go after the frame in flight
	// instead of draining the hour-long animation.
	var d *NullDraw
	pings := 0
	now := time.Unix(0, 0)
	d = NewNull(timer.New(func() time.Time {
		pings++
		if pings == 4 {
			d.Interrupt()
		}
		now = now.Add(10 * time.Millisecond)
		return now
	}, 0))

	d.PushQueue(animation.NewSolid(time.Hour, 1, 2, model.RGB{}))
	out := d.Run()

	assert.Equal(t, 2, d.Stats().Frames(), "one frame before the flag, one in flight")
	assert.Len(t, out, 1)
	assert.Greater(t, out[0].TimeRemaining(), time.Duration(0), "animation was cut short, not drained")
}

func TestNullDrawCountsFrames(t *testing.T) {
	d := NewNull(fakeTimer(10 * time.Millisecond))
	d.PushQueue(animation.NewSolid(100*time.Millisecond, 1, 3, model.RGB{}))

	out := d.Run()

	assert.Len(t, out, 1)
	assert.Equal(t, 10, d.Stats().Frames())
	assert.Equal(t, 3, d.KnownLen())
	assert.NoError(t, d.Close())
}
