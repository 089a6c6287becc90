package layer

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/progress/anim"
	"github.com/gogpu/progress/geometry"
)

// Layer is a drawable primitive in the render tree.
type Layer interface {
	// Kind returns the primitive kind.
	Kind() Kind

	// Render draws the primitive into its backing store as of now.
	Render(now time.Time) error

	// Image returns the backing store contents.
	Image() image.Image

	// IsMask reports whether the layer only serves as another layer's mask
	// and must not be composited on its own.
	IsMask() bool
}

// backing is a gg.Context sized to the pool bounds, reused across draws.
type backing struct {
	dc *gg.Context
}

func (b *backing) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid bounds %dx%d", width, height)
	}
	if b.dc == nil {
		b.dc = gg.NewContext(width, height)
		return nil
	}
	return b.dc.Resize(width, height)
}

func (b *backing) image() image.Image {
	if b.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return b.dc.Image()
}

// Shape strokes a geometry path.
type Shape struct {
	Path        *geometry.Path
	LineWidth   float64
	LineCap     gg.LineCap
	StrokeColor gg.RGBA

	reveal   *anim.Reveal
	mask     bool
	attached bool
	backing
}

func newShape() *Shape {
	s := &Shape{}
	s.reset()
	return s
}

func (s *Shape) reset() {
	s.Path = nil
	s.LineWidth = 1
	s.LineCap = gg.LineCapRound
	s.StrokeColor = gg.Black
	s.reveal = nil
	s.mask = false
}

// Kind returns KindShape.
func (s *Shape) Kind() Kind { return KindShape }

// IsMask reports whether the shape is bound as a gradient mask.
func (s *Shape) IsMask() bool { return s.mask }

// Attached reports whether the shape is in the render tree.
func (s *Shape) Attached() bool { return s.attached }

// SetReveal attaches a stroke-end animation.
func (s *Shape) SetReveal(r anim.Reveal) { s.reveal = &r }

// Reveal returns the stroke-end animation, if any.
func (s *Shape) Reveal() (anim.Reveal, bool) {
	if s.reveal == nil {
		return anim.Reveal{}, false
	}
	return *s.reveal, true
}

// StrokeEnd returns the visible fraction of the path at now.
func (s *Shape) StrokeEnd(now time.Time) float64 {
	if s.reveal == nil {
		return 1
	}
	return s.reveal.Value(now)
}

// Render strokes the visible part of the path into the backing store.
func (s *Shape) Render(now time.Time) error {
	if s.dc == nil {
		return nil
	}
	s.dc.Clear()

	visible := s.Path.Trim(s.StrokeEnd(now))
	if visible.IsEmpty() {
		return nil
	}
	s.dc.SetLineWidth(s.LineWidth)
	s.dc.SetLineCap(s.LineCap)
	s.dc.SetColor(s.StrokeColor.Color())
	return visible.Stroke(s.dc)
}

// Image returns the rendered stroke.
func (s *Shape) Image() image.Image { return s.image() }
