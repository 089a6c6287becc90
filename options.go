package progress

import (
	"time"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"

	"github.com/gogpu/progress/anim"
	"github.com/gogpu/progress/label"
)

// Invalidation tells the host which part of the surface needs repainting.
type Invalidation int

const (
	// InvalidateLayers means geometry changed; repaint everything.
	InvalidateLayers Invalidation = iota
	// InvalidateLabel means only the label text changed.
	InvalidateLabel
)

// String returns the invalidation name.
func (i Invalidation) String() string {
	if i == InvalidateLabel {
		return "label"
	}
	return "layers"
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := progress.NewRenderer(
//	    progress.WithInvalidator(func(progress.Invalidation) { window.Redraw() }),
//	)
type Option func(*options)

type options struct {
	clock         anim.Clock
	invalidator   func(Invalidation)
	fontSource    *text.FontSource
	locale        language.Tag
	distance      label.Distance
	frameInterval time.Duration
}

func defaultOptions() options {
	return options{
		clock:         anim.SystemClock{},
		locale:        language.Und,
		distance:      label.Euclidean,
		frameInterval: anim.DefaultFrameInterval,
	}
}

// WithClock sets the clock used for animation. Offline renderers pass an
// anim.ManualClock and step it between frames.
func WithClock(c anim.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithInvalidator sets the callback that receives redraw requests.
func WithInvalidator(fn func(Invalidation)) Option {
	return func(o *options) {
		o.invalidator = fn
	}
}

// WithFontSource sets the label font. The default is Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.fontSource = src
	}
}

// WithLocale formats the label for the given locale, with its digit
// grouping and separators. By default the label is plain printf output.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithDistance selects how the label walks between anchor points.
func WithDistance(d label.Distance) Option {
	return func(o *options) {
		o.distance = d
	}
}

// WithFrameInterval sets the tick cadence used by Renderer.Run.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}
