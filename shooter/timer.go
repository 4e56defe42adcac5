package shooter

import (
	"math"
	"time"
)

type TimerMode uint8

const (
	Once TimerMode = iota
	Repeating
)

// Timer counts simulated time in whole nanoseconds so completions land on
// exact boundaries.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished bool
	just     int
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	t := Timer{Duration: d, Mode: mode}
	t.Reset()
	return t
}

// NewFinishedTimer returns a one-shot timer that has already run out.
func NewFinishedTimer(d time.Duration) Timer {
	return Timer{Duration: d, Elapsed: d, Mode: Once, finished: true}
}

// Tick advances the timer and returns how many times it completed: any
// number for a repeating timer, 0 or 1 for a one-shot timer.
func (t *Timer) Tick(dt time.Duration) int {
	t.just = 0
	if dt < 0 {
		dt = 0
	}

	if t.Mode == Once {
		if t.finished {
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.just = 1
		}
		return t.just
	}

	if t.Duration <= 0 {
		return 0
	}
	t.Elapsed += dt
	t.just = int(t.Elapsed / t.Duration)
	t.Elapsed %= t.Duration
	t.finished = t.just > 0
	return t.just
}

// TickEach advances a repeating timer one period at a time and calls each
// after every completion. each may change the duration of the next period,
// and the leftover time counts toward it.
func (t *Timer) TickEach(dt time.Duration, each func()) int {
	if t.Mode != Repeating {
		n := t.Tick(dt)
		for range n {
			each()
		}
		return n
	}

	t.just = 0
	if dt > 0 {
		t.Elapsed += dt
	}
	for t.Duration > 0 && t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.just++
		each()
	}
	t.finished = t.just > 0
	return t.just
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.just > 0
}

// Finished reports whether a one-shot timer has run out, or whether a
// repeating timer completed on the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer. A one-shot timer without duration is finished
// right away.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.just = 0
	t.finished = t.Mode == Once && t.Duration <= 0
}

// SetDuration changes the period and keeps the elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
}

// Remaining is the time left until the next completion.
func (t *Timer) Remaining() time.Duration {
	return max(t.Duration-t.Elapsed, 0)
}

// seconds converts a frame delta to a Duration rounded to the nanosecond.
func seconds(dt float64) time.Duration {
	return time.Duration(math.Round(dt * float64(time.Second)))
}
