package draw

import (
	"fmt"
	"time"
)

// DrawStats tracks frame counters and elapsed time for a driver run.
type DrawStats struct {
	start  time.Time
	end    time.Time
	frames int
	num    int
}

// NewDrawStats returns stats with the start time set to now.
func NewDrawStats() DrawStats {
	now := time.Now()
	return DrawStats{start: now, end: now}
}

// Reset restamps the start time and zeroes the counters.
func (s *DrawStats) Reset() {
	*s = NewDrawStats()
}

// IncFrames increments the processed-frame counter.
func (s *DrawStats) IncFrames() {
	s.frames++
}

// SetNum records the LED count of the strip being tracked.
func (s *DrawStats) SetNum(num int) {
	s.num = num
}

// End records the stop time. May be called multiple times; each call just
// updates the saved instant.
func (s *DrawStats) End() {
	s.end = time.Now()
}

// Frames returns the processed-frame count.
func (s DrawStats) Frames() int {
	return s.frames
}

func (s DrawStats) String() string {
	secs := s.end.Sub(s.start).Seconds()
	ups := 0.0
	if secs > 0 {
		ups = float64(s.frames) / secs
	}
	return fmt.Sprintf("drawing statistics: %.3fs, frame count: %d, leds: %d, avg updates per second: %.1f", secs, s.frames, s.num, ups)
}
