package timer

import (
	"testing"
	"time"
)

// fakeClock advances by step every time it is read, giving the busy-wait
// something deterministic to spin against.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) clock() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestPingUnpaced(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: 10 * time.Millisecond}
	tm := New(fc.clock, 0)

	if dt := tm.Ping(); dt != 10*time.Millisecond {
		t.Fatalf("expected 10ms dt, got %v", dt)
	}
	if dt := tm.Ping(); dt != 10*time.Millisecond {
		t.Fatalf("expected 10ms dt on second ping, got %v", dt)
	}
}

func TestPingBusyWaitsToTarget(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
	tm := New(fc.clock, 7*time.Millisecond)

	// Each clock read advances 1ms, so the spin loop must poll until the
	// target is reached.
	for i := 0; i < 5; i++ {
		dt := tm.Ping()
		if dt < 7*time.Millisecond {
			t.Fatalf("ping %d returned %v, below the 7ms target", i, dt)
		}
		if dt > 8*time.Millisecond {
			t.Fatalf("ping %d returned %v, overshot the target", i, dt)
		}
	}
}

func TestPingAccumulatesToTarget(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
	target := 5 * time.Millisecond
	tm := New(fc.clock, target)

	var acc time.Duration
	const n = 100
	for i := 0; i < n; i++ {
		acc += tm.Ping()
	}
	if want := time.Duration(n) * target; acc != want {
		t.Fatalf("expected %v accumulated, got %v", want, acc)
	}
}

func TestResetKeepsTarget(t *testing.T) {
	fc := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
	tm := New(fc.clock, 3*time.Millisecond)

	tm.Ping()
	tm.Reset()

	if dt := tm.Ping(); dt < 3*time.Millisecond {
		t.Fatalf("target delta lost across Reset: got %v", dt)
	}
}
