// Package label animates the numeric label of a progress indicator.
//
// An Interpolator remembers one previous target so a redraw can animate
// from the last shown value to the new one without external bookkeeping.
package label

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// Distance selects how the walk between fromPoint and toPoint is measured.
type Distance int

const (
	// Euclidean walks the straight line between the two points, so the
	// current point reaches toPoint at fraction 1.
	Euclidean Distance = iota

	// LegacyDistance reproduces the historical computation: the horizontal
	// term of the length is start.x - end.y and the heading is
	// atan2(dx, dy). The label drifts when the two points differ or when
	// x != y.
	LegacyDistance
)

// Target is a remembered (number, point) pair.
type Target struct {
	Number float64
	Point  gg.Point
}

// Interpolator holds the from/to and current state of the label.
// The zero value is not usable; create one with New.
type Interpolator struct {
	fromNumber float64
	toNumber   float64
	hasTo      bool

	fromPoint    gg.Point
	hasFromPoint bool
	toPoint      gg.Point
	hasToPoint   bool

	current      float64
	hasCurrent   bool
	currentPoint gg.Point
	hasCurrentPt bool

	// OffsetRatio biases the text box against the anchor, per axis in [-1, 1].
	OffsetRatio gg.Point
	// Offset is a pixel bias added to the anchor.
	Offset gg.Point
	// Color is the text color.
	Color gg.RGBA
	// Face is the font face; nil draws nothing but still formats.
	Face text.Face
	// Hidden suppresses drawing.
	Hidden bool

	distance  Distance
	tag       language.Tag
	formatter *Formatter
}

// New creates an interpolator with the default format and black text.
// tag selects the number locale; language.Und formats as plain printf.
func New(tag language.Tag) *Interpolator {
	return &Interpolator{
		Color:     gg.Black,
		tag:       tag,
		formatter: NewFormatter(DefaultFormat, tag),
	}
}

// SetDistance selects the distance computation used by Advance.
func (in *Interpolator) SetDistance(d Distance) { in.distance = d }

// SetFormat sets the printf-style format of the label text.
func (in *Interpolator) SetFormat(format string) {
	in.formatter = NewFormatter(format, in.tag)
}

// Format returns the current format string.
func (in *Interpolator) Format() string { return in.formatter.Format() }

// IsInteger reports whether the format selects integer rendering.
func (in *Interpolator) IsInteger() bool { return in.formatter.IsInteger() }

// SetTarget sets a new target number and point. The previous target, if any,
// becomes the from state and is returned. With no previous target the from
// number stays as it was and the from point becomes unset.
func (in *Interpolator) SetTarget(number float64, point gg.Point) (Target, bool) {
	prev := Target{Number: in.toNumber, Point: in.toPoint}
	hadNumber, hadPoint := in.hasTo, in.hasToPoint

	if hadNumber {
		in.fromNumber = in.toNumber
	}
	in.fromPoint, in.hasFromPoint = in.toPoint, hadPoint

	in.toNumber, in.hasTo = number, true
	in.toPoint, in.hasToPoint = point, true

	return prev, hadNumber && hadPoint
}

// SetFromPoint overrides the point the label walks from.
func (in *Interpolator) SetFromPoint(p gg.Point) {
	in.fromPoint, in.hasFromPoint = p, true
}

// From returns the from state.
func (in *Interpolator) From() (number float64, point gg.Point, ok bool) {
	return in.fromNumber, in.fromPoint, in.hasFromPoint
}

// To returns the target state.
func (in *Interpolator) To() (Target, bool) {
	return Target{Number: in.toNumber, Point: in.toPoint}, in.hasTo && in.hasToPoint
}

// Current returns the current number and point. ok is false while either
// is unset, in which case nothing is drawn.
func (in *Interpolator) Current() (number float64, point gg.Point, ok bool) {
	return in.current, in.currentPoint, in.hasCurrent && in.hasCurrentPt
}

// SnapToTarget sets the current state to the target immediately.
func (in *Interpolator) SnapToTarget() {
	in.current, in.hasCurrent = in.toNumber, in.hasTo
	in.currentPoint, in.hasCurrentPt = in.toPoint, in.hasToPoint
}

// Advance sets the current state for the given fraction of the way from
// the from state to the target. Fractions are used as given.
func (in *Interpolator) Advance(fraction float64) {
	if in.hasTo {
		in.current = in.fromNumber + (in.toNumber-in.fromNumber)*fraction
		in.hasCurrent = true
	}
	if in.hasFromPoint && in.hasToPoint {
		length := in.length(in.fromPoint, in.toPoint)
		in.currentPoint = in.walk(in.fromPoint, in.toPoint, length*fraction)
		in.hasCurrentPt = true
	}
}

func (in *Interpolator) length(start, end gg.Point) float64 {
	height := start.Y - end.Y
	width := start.X - end.X
	if in.distance == LegacyDistance {
		width = start.X - end.Y
	}
	return math.Sqrt(height*height + width*width)
}

// walk moves from start toward end by distance along the heading between them.
func (in *Interpolator) walk(start, end gg.Point, distance float64) gg.Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	heading := math.Atan2(dy, dx)
	if in.distance == LegacyDistance {
		heading = math.Atan2(dx, dy)
	}
	return gg.Pt(start.X+distance*math.Cos(heading), start.Y+distance*math.Sin(heading))
}

// Text formats the current number. ok is false when no current number is set.
func (in *Interpolator) Text() (string, bool) {
	if !in.hasCurrent {
		return "", false
	}
	return in.formatter.Sprint(in.current), true
}

// clampRatio limits v to [-1, 1].
func clampRatio(v float64) float64 {
	switch {
	case v-1 > 0:
		return 1
	case v-1 < -2:
		return -1
	}
	return v
}

// DrawPosition returns the top-left corner of a text box of the given size:
// the anchor (current point plus Offset) shifted by (clamp(ratio)-1)/2 of
// the box size per axis. Ratio 1 puts the box after the anchor, -1 before it
// and 0 centers it.
func (in *Interpolator) DrawPosition(width, height float64) gg.Point {
	anchor := in.currentPoint.Add(in.Offset)
	rx := (clampRatio(in.OffsetRatio.X) - 1) / 2
	ry := (clampRatio(in.OffsetRatio.Y) - 1) / 2
	return gg.Pt(anchor.X+width*rx, anchor.Y+height*ry)
}

// Measure returns the size of s in the label face.
func (in *Interpolator) Measure(s string) (width, height float64) {
	return text.Measure(s, in.Face)
}

// Draw paints the label onto dc. It reports whether anything was drawn.
func (in *Interpolator) Draw(dc *gg.Context) bool {
	if in.Hidden || in.Face == nil {
		return false
	}
	if _, _, ok := in.Current(); !ok {
		return false
	}
	s, _ := in.Text()
	w, h := in.Measure(s)
	p := in.DrawPosition(w, h)

	dc.SetFont(in.Face)
	dc.SetColor(in.Color.Color())
	// DrawString takes the baseline; p is the top of the text box.
	dc.DrawString(s, p.X, p.Y+in.Face.Metrics().Ascent)
	return true
}
