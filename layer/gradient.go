package layer

import (
	"image"
	"time"

	"github.com/gogpu/gg"
)

// Gradient is a linear color ramp confined to the coverage of a mask shape.
// Start and End are in unit coordinates of the layer bounds.
type Gradient struct {
	Stops []gg.RGBA
	Start gg.Point
	End   gg.Point

	maskShape *Shape
	attached  bool
	backing
}

func newGradient() *Gradient {
	g := &Gradient{}
	g.reset()
	return g
}

func (g *Gradient) reset() {
	g.Stops = nil
	g.Start = gg.Pt(0.5, 0)
	g.End = gg.Pt(0.5, 1)
	g.setMask(nil)
}

// Kind returns KindGradient.
func (g *Gradient) Kind() Kind { return KindGradient }

// IsMask returns false; gradients are always composited.
func (g *Gradient) IsMask() bool { return false }

// Attached reports whether the gradient is in the render tree.
func (g *Gradient) Attached() bool { return g.attached }

// Mask returns the shape the gradient is confined to.
func (g *Gradient) Mask() *Shape { return g.maskShape }

func (g *Gradient) setMask(s *Shape) {
	if g.maskShape != nil {
		g.maskShape.mask = false
	}
	g.maskShape = s
	if s != nil {
		s.mask = true
	}
}

// Brush returns the gradient in pixel coordinates of a width x height
// surface. Stops are spread evenly from 0 to 1; a single stop is a flat
// color.
func (g *Gradient) Brush(width, height float64) *gg.LinearGradientBrush {
	b := gg.NewLinearGradientBrush(
		g.Start.X*width, g.Start.Y*height,
		g.End.X*width, g.End.Y*height,
	)
	switch n := len(g.Stops); n {
	case 0:
	case 1:
		b.AddColorStop(0, g.Stops[0])
		b.AddColorStop(1, g.Stops[0])
	default:
		for i, c := range g.Stops {
			b.AddColorStop(float64(i)/float64(n-1), c)
		}
	}
	return b
}

// Render paints the ramp into the backing store, modulated by the
// rasterized alpha of the mask shape. Without a mask the whole layer is
// filled.
func (g *Gradient) Render(now time.Time) error {
	if g.dc == nil {
		return nil
	}
	g.dc.Clear()
	if len(g.Stops) == 0 {
		return nil
	}

	w, h := g.dc.Width(), g.dc.Height()
	brush := g.Brush(float64(w), float64(h))

	var mask *gg.Mask
	if g.maskShape != nil {
		if err := g.maskShape.Render(now); err != nil {
			return err
		}
		mask = gg.NewMaskFromAlpha(g.maskShape.Image())
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coverage := 1.0
			if mask != nil {
				a := mask.At(x, y)
				if a == 0 {
					continue
				}
				coverage = float64(a) / 255
			}
			c := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			c.A *= coverage
			g.dc.SetPixel(x, y, c.Premultiply())
		}
	}
	return nil
}

// Image returns the rendered ramp.
func (g *Gradient) Image() image.Image { return g.image() }
