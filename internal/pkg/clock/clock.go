// Package clock abstracts time.Now so admission and lifecycle logic can be
// tested against a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock reports a fixed instant until advanced explicitly.
type FrozenClock struct {
	now time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{now: t}
}

func (c *FrozenClock) Now() time.Time {
	return c.now
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
