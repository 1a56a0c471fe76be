package draw

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

// SPIDraw drives APA102 LEDs through a hardware SPI peripheral instead of
// bit-banging GPIO. On hosts with a real SPI controller this offloads the
// clocking and reaches much higher refresh rates.
type SPIDraw struct {
	queueCore

	port spi.PortCloser // nil when the port was injected
	dev  *apa102.Dev
	num  int
	buf  []byte
}

// NewSPI opens the named SPI port (empty selects the first available) and
// prepares a driver for numPixels LEDs paced by t.
func NewSPI(portName string, numPixels int, t *timer.Timer) (*SPIDraw, error) {
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", portName, err)
	}
	d, err := newSPIDev(port, numPixels, t)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	d.port = port
	return d, nil
}

// NewSPIFromPort wraps an already-open SPI port. The caller keeps ownership
// of the port.
func NewSPIFromPort(port spi.Port, numPixels int, t *timer.Timer) (*SPIDraw, error) {
	return newSPIDev(port, numPixels, t)
}

func newSPIDev(port spi.Port, numPixels int, t *timer.Timer) (*SPIDraw, error) {
	opts := apa102.DefaultOpts
	opts.NumPixels = numPixels
	dev, err := apa102.New(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("apa102 init: %w", err)
	}
	return &SPIDraw{
		queueCore: queueCore{timer: t, stats: NewDrawStats()},

		dev: dev,
		num: numPixels,
		buf: make([]byte, numPixels*3),
	}, nil
}

func (d *SPIDraw) Run() []animation.Animation {
	return d.run(d.writeFrame)
}

func (d *SPIDraw) writeFrame(f *model.Frame) {
	d.dev.Intensity = uint8(f.Brightness() * 255.0)

	n := f.Len()
	if n > d.num {
		n = d.num
	}
	for i := 0; i < n; i++ {
		c := f.At(i)
		d.buf[i*3+0] = c.R
		d.buf[i*3+1] = c.G
		d.buf[i*3+2] = c.B
	}
	for i := n * 3; i < len(d.buf); i++ {
		d.buf[i] = 0
	}

	// Write failures are not recoverable mid-run; the next frame retries.
	_, _ = d.dev.Write(d.buf)
}

// Stop blanks the strip with one all-zero frame write.
func (d *SPIDraw) Stop(size int) {
	for i := range d.buf {
		d.buf[i] = 0
	}
	_, _ = d.dev.Write(d.buf)
}

func (d *SPIDraw) Close() error {
	d.Stop(d.knownLen)
	if d.port != nil {
		return d.port.Close()
	}
	return nil
}
