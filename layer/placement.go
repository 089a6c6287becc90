package layer

import "github.com/gogpu/gg"

// Axis is the direction of the gradient ramp.
type Axis int

const (
	// AxisHorizontal runs the ramp along x.
	AxisHorizontal Axis = iota
	// AxisVertical runs the ramp along y.
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Placement is a pair of gradient anchors in unit coordinates.
type Placement struct {
	Start gg.Point
	End   gg.Point
}

// CircularPlacement spans the gradient across the ring's horizontal extent
// [center.x - radius, center.x + radius]. For the vertical axis the same
// ratios are taken against the height.
func CircularPlacement(axis Axis, width, height float64, center gg.Point, radius float64) Placement {
	startRatio := center.X - radius
	endRatio := center.X + radius
	if axis == AxisVertical {
		return Placement{
			Start: gg.Pt(0.5, startRatio/height),
			End:   gg.Pt(0.5, endRatio/height),
		}
	}
	return Placement{
		Start: gg.Pt(startRatio/width, 0.5),
		End:   gg.Pt(endRatio/width, 0.5),
	}
}

// LinearPlacement returns the fixed anchors of the linear variant.
func LinearPlacement(axis Axis) Placement {
	if axis == AxisVertical {
		return Placement{Start: gg.Pt(0.5, 0), End: gg.Pt(0.5, 0.5)}
	}
	return Placement{Start: gg.Pt(0, 1), End: gg.Pt(1, 1)}
}

// Place binds mask as the clip of g and applies stops and anchors.
// It does nothing when stops is empty.
func Place(g *Gradient, mask *Shape, stops []gg.RGBA, pl Placement) {
	if g == nil || len(stops) == 0 {
		return
	}
	g.setMask(mask)
	g.Stops = append(g.Stops[:0], stops...)
	g.Start = pl.Start
	g.End = pl.End
}
