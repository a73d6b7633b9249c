package views

import (
	"context"
	"time"
)

// Remaining is the floored breakdown of time left until a deadline. Each
// unit is truncated and non-carrying: Hours in [0,24), Minutes and Seconds
// in [0,60).
// swagger:model Remaining
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeRemaining computes the breakdown of deadline minus now. The second
// return is false when the deadline has passed (now >= deadline); the zero
// breakdown accompanies it. The value is inherently time-varying, so
// displaying callers re-invoke it on a recurring tick.
func TimeRemaining(deadline, now time.Time) (Remaining, bool) {
	diff := deadline.Sub(now)
	if diff <= 0 {
		return Remaining{}, false
	}
	secs := int(diff / time.Second)
	return Remaining{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}, true
}

// Countdown re-computes TimeRemaining once per second and passes each
// breakdown to fn until the deadline passes or ctx is cancelled. The final
// call delivers ok == false. The ticker is always stopped before return, so
// an unmounted display leaks no timer.
func Countdown(ctx context.Context, deadline time.Time, fn func(rem Remaining, ok bool) bool) {
	if rem, ok := TimeRemaining(deadline, time.Now()); !fn(rem, ok) || !ok {
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rem, ok := TimeRemaining(deadline, time.Now())
			if !fn(rem, ok) || !ok {
				return
			}
		}
	}
}
