package draw

import (
	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

// NullDraw runs the driver loop without any output. Useful in tests and
// for benchmarking animation update rates.
type NullDraw struct {
	queueCore
}

func NewNull(t *timer.Timer) *NullDraw {
	return &NullDraw{
		queueCore: queueCore{timer: t, stats: NewDrawStats()},
	}
}

func (d *NullDraw) Run() []animation.Animation {
	return d.run(func(*model.Frame) {})
}

func (d *NullDraw) Stop(size int) {}

func (d *NullDraw) Close() error { return nil }
