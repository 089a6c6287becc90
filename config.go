package progress

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/progress/geometry"
	"github.com/gogpu/progress/layer"
)

// GradientAxis is the direction of the progress gradient.
type GradientAxis = layer.Axis

// Gradient axes.
const (
	AxisHorizontal = layer.AxisHorizontal
	AxisVertical   = layer.AxisVertical
)

// Default label settings.
const (
	DefaultLabelFontSize = 12.0
	DefaultLabelFormat   = "%.2f%%"
)

// Config is the per-draw snapshot of a progress indicator.
//
// Value is not bounds-checked against MaxValue: ratios above 1 or below 0
// over- or under-sweep. Label fields are optional overrides; a nil field
// keeps whatever the renderer used last (initially the defaults).
type Config struct {
	Value    float64
	MaxValue float64

	// Radius, StartAngle and EndAngle apply to the circular variant.
	// Angles are in degrees.
	Radius     float64
	StartAngle float64
	EndAngle   float64

	// LineWidth is the stroke width of the circular variant. The linear
	// variant strokes with the surface height.
	LineWidth float64

	TrackColor gg.RGBA

	// GradientStops are spread evenly along the gradient. An empty list
	// draws the progress stroke in a flat color instead.
	GradientStops []gg.RGBA
	GradientAxis  GradientAxis

	LabelFontSize    *float64
	LabelColor       *gg.RGBA
	LabelFormat      *string
	LabelOffset      *gg.Point
	LabelOffsetRatio *gg.Point
	LabelHidden      bool
}

// DefaultConfig returns the stock look: a 270 degree gauge open at the
// bottom with a red to purple gradient.
func DefaultConfig() *Config {
	return &Config{
		Value:         1,
		MaxValue:      10,
		Radius:        50,
		StartAngle:    135,
		EndAngle:      45,
		LineWidth:     17,
		TrackColor:    gg.RGB(2.0/3, 2.0/3, 2.0/3),
		GradientStops: []gg.RGBA{gg.RGB(1, 0, 0), gg.RGB(0.5, 0, 0.5)},
		GradientAxis:  AxisHorizontal,
	}
}

// Validate reports values that cannot be drawn.
func (c *Config) Validate() error {
	if c.MaxValue == 0 {
		return &ConfigError{Field: "MaxValue", Reason: "must not be zero"}
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"Value", c.Value},
		{"MaxValue", c.MaxValue},
		{"Radius", c.Radius},
		{"StartAngle", c.StartAngle},
		{"EndAngle", c.EndAngle},
		{"LineWidth", c.LineWidth},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigError{Field: f.name, Reason: "must be finite"}
		}
	}
	if c.LabelFontSize != nil && !(*c.LabelFontSize > 0) {
		return &ConfigError{Field: "LabelFontSize", Reason: "must be positive"}
	}
	return nil
}

// Ratio returns Value / MaxValue.
func (c *Config) Ratio() float64 {
	return c.Value / c.MaxValue
}

// ArcRange returns the start and end angles in radians.
func (c *Config) ArcRange() (start, end float64) {
	return geometry.Radians(c.StartAngle), geometry.Radians(c.EndAngle)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.GradientStops = append([]gg.RGBA(nil), c.GradientStops...)
	if c.LabelFontSize != nil {
		v := *c.LabelFontSize
		out.LabelFontSize = &v
	}
	if c.LabelColor != nil {
		v := *c.LabelColor
		out.LabelColor = &v
	}
	if c.LabelFormat != nil {
		v := *c.LabelFormat
		out.LabelFormat = &v
	}
	if c.LabelOffset != nil {
		v := *c.LabelOffset
		out.LabelOffset = &v
	}
	if c.LabelOffsetRatio != nil {
		v := *c.LabelOffsetRatio
		out.LabelOffsetRatio = &v
	}
	return &out
}
