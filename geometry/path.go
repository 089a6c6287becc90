package geometry

import (
	"math"

	"github.com/gogpu/gg"
)

// Segment is a single element of a Path.
type Segment interface {
	// Length returns the arc length of the segment.
	Length() float64

	// PointAt returns the point at fraction t (0..1) of the segment length.
	PointAt(t float64) gg.Point

	isSegment()
}

// Arc is a circular arc around Center starting at angle Start and
// sweeping Sweep radians. Negative sweeps run counter to positive ones.
type Arc struct {
	Center gg.Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (Arc) isSegment() {}

// End returns the angle at which the arc ends.
func (a Arc) End() float64 { return a.Start + a.Sweep }

// Length returns the arc length.
func (a Arc) Length() float64 { return math.Abs(a.Sweep) * a.Radius }

// IsFullCircle reports whether the arc covers the whole ring.
func (a Arc) IsFullCircle() bool { return math.Abs(a.Sweep) >= 2*math.Pi }

// Area returns the area of the circular sector covered by the arc.
// A full circle yields pi*r^2.
func (a Arc) Area() float64 {
	sweep := math.Min(math.Abs(a.Sweep), 2*math.Pi)
	return 0.5 * a.Radius * a.Radius * sweep
}

// PointAt returns the point at fraction t of the arc.
func (a Arc) PointAt(t float64) gg.Point {
	angle := a.Start + a.Sweep*t
	return gg.Pt(a.Center.X+a.Radius*math.Cos(angle), a.Center.Y+a.Radius*math.Sin(angle))
}

// Line is a straight segment.
type Line struct {
	From gg.Point
	To   gg.Point
}

func (Line) isSegment() {}

// Length returns the segment length.
func (l Line) Length() float64 { return l.From.Distance(l.To) }

// PointAt returns the point at fraction t of the segment.
func (l Line) PointAt(t float64) gg.Point { return l.From.Lerp(l.To, t) }

// Path is an ordered, immutable sequence of segments.
type Path struct {
	segments []Segment
}

// NewPath creates a path from the given segments.
func NewPath(segments ...Segment) *Path {
	s := make([]Segment, len(segments))
	copy(s, segments)
	return &Path{segments: s}
}

// Segments returns a copy of the path segments.
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	s := make([]Segment, len(p.segments))
	copy(s, p.segments)
	return s
}

// IsEmpty reports whether the path has nothing to draw.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.segments) == 0
}

// Len returns the total length of the path.
func (p *Path) Len() float64 {
	if p == nil {
		return 0
	}
	var total float64
	for _, s := range p.segments {
		total += s.Length()
	}
	return total
}

// End returns the last point of the path.
func (p *Path) End() (gg.Point, bool) {
	if p.IsEmpty() {
		return gg.Point{}, false
	}
	return p.segments[len(p.segments)-1].PointAt(1), true
}

// Trim returns the leading fraction t of the path, measured by length.
// t <= 0 yields an empty path; t >= 1 returns p itself.
func (p *Path) Trim(t float64) *Path {
	if p.IsEmpty() || t >= 1 {
		return p
	}
	if t <= 0 {
		return &Path{}
	}

	remaining := p.Len() * t
	out := &Path{segments: make([]Segment, 0, len(p.segments))}
	for _, s := range p.segments {
		l := s.Length()
		if l <= remaining {
			out.segments = append(out.segments, s)
			remaining -= l
			continue
		}
		if remaining > 0 {
			out.segments = append(out.segments, trimSegment(s, remaining/l))
		}
		break
	}
	return out
}

func trimSegment(s Segment, t float64) Segment {
	switch seg := s.(type) {
	case Arc:
		seg.Sweep *= t
		return seg
	case Line:
		return Line{From: seg.From, To: seg.PointAt(t)}
	default:
		return s
	}
}

// ToGG converts the path to a gg path.
func (p *Path) ToGG() *gg.Path {
	out := gg.NewPath()
	p.Append(out)
	return out
}

// Append appends the path's elements to dst.
func (p *Path) Append(dst *gg.Path) {
	if p == nil {
		return
	}
	for _, s := range p.segments {
		emit(s, dst.MoveTo, dst.LineTo, dst.CubicTo, dst.Close)
	}
}

// Stroke replays the path onto dc's current path and strokes it with dc's
// current stroke settings.
func (p *Path) Stroke(dc *gg.Context) error {
	dc.ClearPath()
	if p.IsEmpty() {
		return nil
	}
	for _, s := range p.segments {
		emit(s, dc.MoveTo, dc.LineTo, dc.CubicTo, dc.ClosePath)
	}
	return dc.Stroke()
}

// emit writes a segment through the given path sink functions, so the same
// conversion serves both gg.Path and gg.Context.
func emit(
	s Segment,
	moveTo, lineTo func(x, y float64),
	cubicTo func(c1x, c1y, c2x, c2y, x, y float64),
	closePath func(),
) {
	switch seg := s.(type) {
	case Line:
		moveTo(seg.From.X, seg.From.Y)
		lineTo(seg.To.X, seg.To.Y)
	case Arc:
		emitArc(seg, moveTo, cubicTo)
		if seg.IsFullCircle() {
			closePath()
		}
	}
}

// emitArc approximates the arc with cubic Bezier curves of at most 90 degrees.
func emitArc(a Arc, moveTo func(x, y float64), cubicTo func(c1x, c1y, c2x, c2y, x, y float64)) {
	start := a.PointAt(0)
	moveTo(start.X, start.Y)
	if a.Sweep == 0 {
		return
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.Sweep) / maxAngle))
	step := a.Sweep / float64(n)
	r := a.Radius
	cx, cy := a.Center.X, a.Center.Y

	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		a2 := a1 + step

		alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)

		x1, y1 := cx+r*cos1, cy+r*sin1
		x2, y2 := cx+r*cos2, cy+r*sin2

		cubicTo(
			x1-alpha*r*sin1, y1+alpha*r*cos1,
			x2+alpha*r*sin2, y2-alpha*r*cos2,
			x2, y2,
		)
	}
}
