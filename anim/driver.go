// Package anim drives time-based animation of a progress indicator.
//
// A Driver advances a fraction from 0 to 1 over a fixed duration. It does not
// own a goroutine: frames are delivered by calling Tick from whatever frame
// source the host has (a display refresh callback, a bubbletea tick, a
// time.Ticker via Run). All methods must be called from one goroutine.
package anim

import (
	"context"
	"time"
)

// FrameFunc receives the animation fraction on every tick, including the
// final tick with fraction == 1.
type FrameFunc func(fraction float64)

// Driver is a frame-clock driven animation controller.
//
// State machine: Idle -> Running -> Idle. Starting a running driver
// preempts the current animation.
type Driver struct {
	clock   Clock
	onFrame FrameFunc

	elapsed  time.Duration
	duration time.Duration
	lastTick time.Time
	running  bool
}

// NewDriver creates an idle driver. A nil clock uses SystemClock.
func NewDriver(clock Clock, onFrame FrameFunc) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{clock: clock, onFrame: onFrame}
}

// Start begins an animation of the given duration, stopping any animation in
// flight. A non-positive duration leaves the driver idle and reports false:
// the animation is treated as already complete and no ticks fire.
func (d *Driver) Start(duration time.Duration) bool {
	d.Stop()
	if duration <= 0 {
		return false
	}
	d.elapsed = 0
	d.duration = duration
	d.lastTick = d.clock.Now()
	d.running = true
	return true
}

// Stop invalidates the frame clock. It is a no-op on an idle driver.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether an animation is in flight.
func (d *Driver) Running() bool { return d.running }

// Duration returns the duration of the current or last animation.
func (d *Driver) Duration() time.Duration { return d.duration }

// Elapsed returns the animation time accumulated so far.
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

// Tick advances the animation to now and pushes the new fraction to the
// frame callback. It returns the fraction and whether the driver is still
// running afterwards. Ticks on an idle driver are ignored.
func (d *Driver) Tick(now time.Time) (float64, bool) {
	if !d.running {
		return 0, false
	}

	if delta := now.Sub(d.lastTick); delta > 0 {
		d.elapsed += delta
	}
	d.lastTick = now

	if d.elapsed >= d.duration {
		d.elapsed = d.duration
		d.running = false
	}

	fraction := float64(d.elapsed) / float64(d.duration)
	if !d.running {
		fraction = 1
	}
	if d.onFrame != nil {
		d.onFrame(fraction)
	}
	return fraction, d.running
}

// Run pumps ticks at the given interval on the calling goroutine until the
// animation finishes or ctx is canceled. A non-positive interval uses
// DefaultFrameInterval.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for d.running {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case <-ticker.C:
			d.Tick(d.clock.Now())
		}
	}
	return nil
}
