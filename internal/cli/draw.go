package cli

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/progress"
)

// newRenderer creates a renderer sized for c and draws c on it.
func newRenderer(c *ChartFile, animated bool, opts ...progress.Option) (*progress.Renderer, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	r, err := progress.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Resize(c.Width, c.Height); err != nil {
		return nil, err
	}
	if err := drawChart(r, c, cfg, animated); err != nil {
		return nil, err
	}
	return r, nil
}

func drawChart(r *progress.Renderer, c *ChartFile, cfg *progress.Config, animated bool) error {
	var d []time.Duration
	if animated {
		d = append(d, c.Duration)
	}
	if c.Linear() {
		return r.DrawLinear(cfg, animated, d...)
	}
	return r.Draw(cfg, animated, d...)
}

// paint paints the current renderer state onto a fresh context.
func paint(r *progress.Renderer, c *ChartFile) (*gg.Context, error) {
	dc := gg.NewContext(c.Width, c.Height)
	if c.Background != "" {
		bg, err := progress.ParseColor(c.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		dc.ClearWithColor(bg)
	}
	if err := r.Paint(dc); err != nil {
		return nil, err
	}
	return dc, nil
}
