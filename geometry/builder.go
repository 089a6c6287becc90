package geometry

import (
	"math"

	"github.com/gogpu/gg"
)

// LinearPadding is the horizontal inset of the linear track from the
// surface edges.
const LinearPadding = 20.0

const twoPi = 2 * math.Pi

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Sweep returns the positive sweep from start to end:
// (end - start + 2*pi) normalized into (0, 2*pi].
//
// When end < start the sweep goes the long way round, so a gauge open at
// the bottom (start 135 degrees, end 45 degrees) covers 270 degrees.
// Equal angles yield a full turn.
func Sweep(start, end float64) float64 {
	s := math.Mod(end-start+twoPi, twoPi)
	if s < 0 {
		s += twoPi
	}
	if s == 0 {
		return twoPi
	}
	return s
}

// ProgressSweep returns the sweep of the progress arc for the given
// value/maxValue ratio. Ratios outside [0, 1] over- or under-sweep.
func ProgressSweep(start, end, ratio float64) float64 {
	return Sweep(start, end) * ratio
}

// Circular builds the track arc from start to end around center.
// Equal angles produce a full circle rather than an empty arc.
func Circular(center gg.Point, radius, start, end float64) *Path {
	if start == end {
		return NewPath(Arc{Center: center, Radius: radius, Start: start, Sweep: twoPi})
	}
	return NewPath(Arc{Center: center, Radius: radius, Start: start, Sweep: Sweep(start, end)})
}

// CircularProgress builds the progress arc: it starts where the track
// starts and sweeps ProgressSweep(start, end, ratio). A zero ratio yields
// an empty path, unlike Circular where equal angles mean a full ring: no
// progress draws nothing.
func CircularProgress(center gg.Point, radius, start, end, ratio float64) *Path {
	sweep := ProgressSweep(start, end, ratio)
	if sweep == 0 {
		return &Path{}
	}
	return NewPath(Arc{Center: center, Radius: radius, Start: start, Sweep: sweep})
}

// LinearStart returns the first point of the linear track.
func LinearStart(height, padding float64) gg.Point {
	return gg.Pt(padding, height/2)
}

// Linear builds the linear track: a horizontal segment through the
// vertical middle, inset by padding on both sides.
func Linear(width, height, padding float64) *Path {
	return NewPath(Line{
		From: LinearStart(height, padding),
		To:   gg.Pt(width-padding, height/2),
	})
}

// LinearProgressEnd returns the end point of the linear progress segment.
//
// The x-coordinate is scaled by the full width, not by the padded track
// width, so the progress end overshoots the track end near value == maxValue.
func LinearProgressEnd(width, height, maxValue, value float64) gg.Point {
	return gg.Pt(width/maxValue*value, height/2)
}

// LinearProgress builds the linear progress segment.
func LinearProgress(width, height, padding, maxValue, value float64) *Path {
	return NewPath(Line{
		From: LinearStart(height, padding),
		To:   LinearProgressEnd(width, height, maxValue, value),
	})
}
