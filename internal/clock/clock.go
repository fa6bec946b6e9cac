package clock

import "time"

// Clock supplies "now" to the reporting windows so tests can pin it.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// Real returns the wall clock.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a point in time.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	return f.t
}

func (f *Fixed) Set(t time.Time) {
	f.t = t
}

func (f *Fixed) Add(d time.Duration) {
	f.t = f.t.Add(d)
}
