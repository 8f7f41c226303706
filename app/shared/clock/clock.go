package clock

import "time"

// Clock supplies the current time to code that compares against "now".
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// AnchorClock always returns the anchor it was built with.
type AnchorClock struct {
	anchor time.Time
}

// NewAnchorClock creates an AnchorClock. A zero t anchors to the current UTC time.
func NewAnchorClock(t time.Time) AnchorClock {
	if t.IsZero() {
		return AnchorClock{anchor: time.Now().UTC()}
	}
	return AnchorClock{anchor: t.UTC()}
}

func (c AnchorClock) Now() time.Time { return c.anchor }

// FakeClock is a Clock whose Now is driven by NowFn.
type FakeClock struct {
	NowFn func() time.Time
}

func (f *FakeClock) Now() time.Time {
	if f.NowFn != nil {
		return f.NowFn()
	}
	return time.Now().UTC()
}
