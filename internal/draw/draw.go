// Package draw contains the drivers that push animation frames out to LEDs.
//
// Four drivers are provided: the GPIO bit-banged APA102/SK9822 driver for
// the two-wire clocked protocol, a hardware-SPI variant for hosts with a
// real SPI peripheral, a terminal emulation for development without
// hardware, and a null driver that discards frames.
package draw

import (
	"sync/atomic"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

// Draw is the contract for a frame driver. Animations are queued FIFO and
// Run drives each one to completion in order.
type Draw interface {
	// PushQueue appends an animation to the queue.
	PushQueue(a animation.Animation)
	// QueueLen returns the number of queued animations.
	QueueLen() int
	// Run drains the queue, driving every animation until its time runs
	// out, and returns the consumed animations so callers may requeue them.
	Run() []animation.Animation
	// Stats returns the statistics gathered during the last Run.
	Stats() DrawStats
	// Stop writes one all-off frame for a strip of the given length,
	// bypassing the queue. Used at startup and shutdown so the physical
	// strip is never left in a stale state.
	Stop(size int)
	// Interrupt asks a running Run to stop after the frame in flight. It
	// is the only method safe to call from another goroutine; everything
	// that touches the pins stays on the goroutine that called Run.
	Interrupt()
	// Close releases the driver, blanking the strip where that applies.
	Close() error
}

// queueCore holds the queue/timer/stats state and the driver loop shared by
// every Draw implementation. The loop is single-threaded and cooperative:
// the only suspension point is the timer's busy-wait pacing, and the only
// cross-goroutine signal is the interrupt flag.
type queueCore struct {
	queue    []animation.Animation
	timer    *timer.Timer
	stats    DrawStats
	knownLen int

	interrupt int32
}

func (c *queueCore) PushQueue(a animation.Animation) {
	c.queue = append(c.queue, a)
}

func (c *queueCore) QueueLen() int {
	return len(c.queue)
}

func (c *queueCore) Stats() DrawStats {
	return c.stats
}

// KnownLen returns the largest LED count seen across all animations run so
// far. The end-frame length written on shutdown depends on it.
func (c *queueCore) KnownLen() int {
	return c.knownLen
}

// Interrupt makes the driver loop stop after the frame currently being
// written. Safe to call from a signal handler goroutine.
func (c *queueCore) Interrupt() {
	atomic.StoreInt32(&c.interrupt, 1)
}

func (c *queueCore) interrupted() bool {
	return atomic.LoadInt32(&c.interrupt) == 1
}

func (c *queueCore) run(write func(*model.Frame)) []animation.Animation {
	// Track just this run.
	c.timer.Reset()
	c.stats.Reset()

	out := make([]animation.Animation, 0, len(c.queue))

	for len(c.queue) > 0 && !c.interrupted() {
		ani := c.queue[0]
		c.queue = c.queue[1:]

		for ani.TimeRemaining() > 0 && !c.interrupted() {
			ani.Update(c.timer.Ping())
			write(ani.Frame())
			c.stats.IncFrames()
		}

		c.stats.SetNum(ani.Frame().Len())
		// Safe to stamp repeatedly, End just re-records the stop time.
		c.stats.End()

		if n := ani.Frame().Len(); n > c.knownLen {
			c.knownLen = n
		}

		out = append(out, ani)
	}

	return out
}
