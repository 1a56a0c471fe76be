// Package timer provides elapsed-time measurement with optional fixed-rate
// pacing for the animation loop.
package timer

import "time"

// Clock is the injected "now" source. Production code uses SystemClock;
// tests supply a deterministic fake.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// Timer tracks the time elapsed between successive pings. When a target
// delta is configured, Ping busy-waits until at least that much time has
// passed, enforcing a fixed tick rate. The wait is an active spin on
// purpose: there is no scheduler to yield to on the target hardware, and
// the bit-banged LED protocol is sensitive to jitter.
type Timer struct {
	clock    Clock
	ctime    time.Time
	ptime    time.Time
	dt       time.Duration
	targetDT time.Duration
}

// New returns a Timer reading from clock. A targetDT of zero disables
// pacing.
func New(clock Clock, targetDT time.Duration) *Timer {
	now := clock()
	return &Timer{
		clock:    clock,
		ctime:    now,
		ptime:    now,
		targetDT: targetDT,
	}
}

// Ping returns the time elapsed since the previous Ping, spinning first
// until the target delta has passed when one is configured.
func (t *Timer) Ping() time.Duration {
	t.ptime = t.ctime

	if t.targetDT > 0 {
		for t.ctime.Sub(t.ptime) < t.targetDT {
			t.ctime = t.clock()
		}
	} else {
		t.ctime = t.clock()
	}

	t.dt = t.ctime.Sub(t.ptime)
	return t.dt
}

// Reset reinitializes both timestamps to now, keeping the configured
// target delta.
func (t *Timer) Reset() {
	now := t.clock()
	t.ctime = now
	t.ptime = now
	t.dt = 0
}
