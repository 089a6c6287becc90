package anim

import "time"

// Reveal animates a stroke's visible fraction from From to To with linear
// timing. It is evaluated lazily at paint time and keeps no state of its own,
// so it runs independently of any Driver that shares its start and duration.
type Reveal struct {
	Begin    time.Time
	Duration time.Duration
	From     float64
	To       float64
}

// NewReveal creates a 0 to 1 reveal starting at begin.
func NewReveal(begin time.Time, d time.Duration) Reveal {
	return Reveal{Begin: begin, Duration: d, From: 0, To: 1}
}

// Value returns the presentation value at now.
func (r Reveal) Value(now time.Time) float64 {
	if r.Duration <= 0 {
		return r.To
	}
	t := float64(now.Sub(r.Begin)) / float64(r.Duration)
	switch {
	case t <= 0:
		return r.From
	case t >= 1:
		return r.To
	}
	return r.From + (r.To-r.From)*t
}

// Done reports whether the reveal has reached its final value at now.
func (r Reveal) Done(now time.Time) bool {
	return r.Duration <= 0 || !now.Before(r.Begin.Add(r.Duration))
}
