package probe

import "time"

// Clock reports seconds elapsed since a fixed epoch, set at construction
// (process start in practice). All probe timestamps share this epoch.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock returns a Clock with its epoch at the current time.
func NewClock() *Clock {
	return NewClockAt(time.Now)
}

// NewClockAt returns a Clock reading time through now. Tests inject a fake.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Now returns seconds since the epoch.
func (c *Clock) Now() float64 {
	return c.now().Sub(c.start).Seconds()
}
