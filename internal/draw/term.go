package draw

import (
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

// TermDraw emulates a strip by rendering frames as colored blocks on the
// terminal. Handy for iterating on animations away from hardware.
type TermDraw struct {
	queueCore

	drawer display.Drawer
}

// NewTerm creates a terminal driver width "LEDs" wide, paced by t.
func NewTerm(width int, t *timer.Timer) *TermDraw {
	return &TermDraw{
		queueCore: queueCore{timer: t, stats: NewDrawStats()},

		drawer: screen.New(width),
	}
}

func (d *TermDraw) Run() []animation.Animation {
	return d.run(d.writeFrame)
}

func (d *TermDraw) writeFrame(f *model.Frame) {
	_ = d.drawer.Draw(d.drawer.Bounds(), f.Image(), image.Point{})
}

func (d *TermDraw) Stop(size int) {
	d.writeFrame(model.NewFrame(0, size))
}

func (d *TermDraw) Close() error {
	d.Stop(d.knownLen)
	return d.drawer.Halt()
}
