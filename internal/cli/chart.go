package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"

	"github.com/gogpu/progress"
)

// Chart variants.
const (
	VariantCircular = "circular"
	VariantLinear   = "linear"
)

// ChartFile is the on-disk description of a chart and the surface it is
// drawn on. Colors are hex strings or SVG color names.
type ChartFile struct {
	Variant string `mapstructure:"variant" yaml:"variant"`
	Width   int    `mapstructure:"width" yaml:"width"`
	Height  int    `mapstructure:"height" yaml:"height"`

	// Background fills the surface before painting. Empty leaves it
	// transparent.
	Background string `mapstructure:"background" yaml:"background,omitempty"`

	Value      float64 `mapstructure:"value" yaml:"value"`
	MaxValue   float64 `mapstructure:"max_value" yaml:"max_value"`
	Radius     float64 `mapstructure:"radius" yaml:"radius"`
	LineWidth  float64 `mapstructure:"line_width" yaml:"line_width"`
	StartAngle float64 `mapstructure:"start_angle" yaml:"start_angle"`
	EndAngle   float64 `mapstructure:"end_angle" yaml:"end_angle"`

	TrackColor    string   `mapstructure:"track_color" yaml:"track_color"`
	GradientStops []string `mapstructure:"gradient_stops" yaml:"gradient_stops"`
	GradientAxis  string   `mapstructure:"gradient_axis" yaml:"gradient_axis"`

	Label LabelFile `mapstructure:"label" yaml:"label"`

	// Duration is the animation length used by frames and preview.
	Duration time.Duration `mapstructure:"duration" yaml:"-"`
}

// MarshalYAML writes Duration in time.ParseDuration form.
func (c ChartFile) MarshalYAML() (any, error) {
	type plain ChartFile
	return struct {
		plain    `yaml:",inline"`
		Duration string `yaml:"duration"`
	}{plain(c), c.Duration.String()}, nil
}

// LabelFile holds the label overrides. Zero values leave the renderer
// defaults in place.
type LabelFile struct {
	FontSize    float64   `mapstructure:"font_size" yaml:"font_size,omitempty"`
	Color       string    `mapstructure:"color" yaml:"color,omitempty"`
	Format      string    `mapstructure:"format" yaml:"format,omitempty"`
	Offset      []float64 `mapstructure:"offset" yaml:"offset,omitempty"`
	OffsetRatio []float64 `mapstructure:"offset_ratio" yaml:"offset_ratio,omitempty"`
	Hidden      bool      `mapstructure:"hidden" yaml:"hidden,omitempty"`
}

// DemoChart returns the stock demo chart for a variant: a red-labelled
// 7 of 10 gauge, or a 75 of 100 bar with a blue to red gradient.
func DemoChart(variant string) ChartFile {
	def := progress.DefaultConfig()
	c := ChartFile{
		Variant:       VariantCircular,
		Width:         240,
		Height:        240,
		Value:         7,
		MaxValue:      10,
		Radius:        90,
		LineWidth:     def.LineWidth,
		StartAngle:    def.StartAngle,
		EndAngle:      def.EndAngle,
		TrackColor:    "lightgray",
		GradientStops: []string{"red", "purple"},
		GradientAxis:  "horizontal",
		Label:         LabelFile{Color: "red"},
		Duration:      500 * time.Millisecond,
	}
	if variant == VariantLinear {
		c.Variant = VariantLinear
		c.Width, c.Height = 300, 20
		c.Value, c.MaxValue = 75, 100
		c.TrackColor = "gray"
		c.GradientStops = []string{"blue", "red"}
		c.Label = LabelFile{}
		c.Duration = time.Second
	}
	return c
}

// LoadChart reads a YAML chart file on top of the demo chart for variant.
// Keys missing from the file keep their demo values.
func LoadChart(path, variant string) (*ChartFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("chart file %s not found", path)
		}
		return nil, fmt.Errorf("reading chart file %s: %w", path, err)
	}

	if v.IsSet("variant") {
		variant = v.GetString("variant")
	}
	c := DemoChart(variant)
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding chart file %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("chart file %s: %w", path, err)
	}
	return &c, nil
}

// Check validates the fields that Config does not cover.
func (c *ChartFile) Check() error {
	switch c.Variant {
	case VariantCircular, VariantLinear:
	default:
		return fmt.Errorf("unknown variant %q (want %s or %s)", c.Variant, VariantCircular, VariantLinear)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %v", c.Duration)
	}
	return nil
}

// Linear reports whether the chart is the linear variant.
func (c *ChartFile) Linear() bool {
	return c.Variant == VariantLinear
}

// Config converts the chart file into a renderer config.
func (c *ChartFile) Config() (*progress.Config, error) {
	cfg := &progress.Config{
		Value:      c.Value,
		MaxValue:   c.MaxValue,
		Radius:     c.Radius,
		LineWidth:  c.LineWidth,
		StartAngle: c.StartAngle,
		EndAngle:   c.EndAngle,
	}

	var err error
	if cfg.TrackColor, err = progress.ParseColor(c.TrackColor); err != nil {
		return nil, fmt.Errorf("track_color: %w", err)
	}
	for i, s := range c.GradientStops {
		stop, err := progress.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("gradient_stops[%d]: %w", i, err)
		}
		cfg.GradientStops = append(cfg.GradientStops, stop)
	}

	switch strings.ToLower(c.GradientAxis) {
	case "", "horizontal":
		cfg.GradientAxis = progress.AxisHorizontal
	case "vertical":
		cfg.GradientAxis = progress.AxisVertical
	default:
		return nil, fmt.Errorf("gradient_axis: unknown axis %q", c.GradientAxis)
	}

	if err := c.Label.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *LabelFile) apply(cfg *progress.Config) error {
	if l.FontSize != 0 {
		size := l.FontSize
		cfg.LabelFontSize = &size
	}
	if l.Color != "" {
		col, err := progress.ParseColor(l.Color)
		if err != nil {
			return fmt.Errorf("label.color: %w", err)
		}
		cfg.LabelColor = &col
	}
	if l.Format != "" {
		format := l.Format
		cfg.LabelFormat = &format
	}
	if l.Offset != nil {
		p, err := point("label.offset", l.Offset)
		if err != nil {
			return err
		}
		cfg.LabelOffset = &p
	}
	if l.OffsetRatio != nil {
		p, err := point("label.offset_ratio", l.OffsetRatio)
		if err != nil {
			return err
		}
		cfg.LabelOffsetRatio = &p
	}
	cfg.LabelHidden = l.Hidden
	return nil
}

func point(field string, v []float64) (gg.Point, error) {
	if len(v) != 2 {
		return gg.Point{}, fmt.Errorf("%s: want [x, y], got %d values", field, len(v))
	}
	return gg.Pt(v[0], v[1]), nil
}
