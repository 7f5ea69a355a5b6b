package notes

import "time"

// Clock abstracts the ambient wall-clock read used for dates, semesters, and
// creation timestamps so generation is deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// ClockAt returns a clock frozen at the given instant.
func ClockAt(at time.Time) Clock {
	return fixedClock{at: at}
}
