package diag

import "time"

// FrameTimes keeps a sliding window of frame durations and reports averages
// for the debug overlay.
type FrameTimes struct {
	samples []time.Duration
	next    int
	filled  int
	last    time.Time
}

// NewFrameTimes creates a window of the given sample count (default 120).
func NewFrameTimes(window int) *FrameTimes {
	if window <= 0 {
		window = 120
	}
	return &FrameTimes{samples: make([]time.Duration, window)}
}

// Tick records the time since the previous Tick. The first call only arms
// the clock.
func (ft *FrameTimes) Tick() {
	now := time.Now()
	if !ft.last.IsZero() {
		ft.Record(now.Sub(ft.last))
	}
	ft.last = now
}

// Record adds one frame duration to the window.
func (ft *FrameTimes) Record(d time.Duration) {
	ft.samples[ft.next] = d
	ft.next = (ft.next + 1) % len(ft.samples)
	if ft.filled < len(ft.samples) {
		ft.filled++
	}
}

// AvgFrameTime returns the mean frame duration over the window, 0 if empty.
func (ft *FrameTimes) AvgFrameTime() time.Duration {
	if ft.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < ft.filled; i++ {
		sum += ft.samples[i]
	}
	return sum / time.Duration(ft.filled)
}

// AvgMillis returns the mean frame time in milliseconds.
func (ft *FrameTimes) AvgMillis() float64 {
	return float64(ft.AvgFrameTime()) / float64(time.Millisecond)
}

// FPS returns the mean frames per second, 0 if no samples yet.
func (ft *FrameTimes) FPS() float64 {
	avg := ft.AvgFrameTime()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
