package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/progress/anim"
	"github.com/gogpu/progress/geometry"
	"github.com/gogpu/progress/label"
	"github.com/gogpu/progress/layer"
)

type variant int

const (
	variantCircular variant = iota
	variantLinear
)

func (v variant) String() string {
	if v == variantLinear {
		return "linear"
	}
	return "circular"
}

// Renderer draws a progress indicator into pooled layers and paints them
// onto a gg.Context. A host owns one Renderer per indicator, calls Resize on
// layout changes, Draw or DrawLinear when the value changes, and Paint when
// it is invalidated.
//
// A Renderer is not safe for concurrent use; all calls, including Tick,
// must come from the host's rendering goroutine.
type Renderer struct {
	opts options

	pool   *layer.Pool
	label  *label.Interpolator
	driver *anim.Driver

	source   *text.FontSource
	fontSize float64

	// progress is the progress shape of the last draw.
	progress *layer.Shape

	width, height int
}

// NewRenderer creates a renderer with empty bounds.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.fontSource
	if src == nil {
		var err error
		src, err = text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("progress: loading default font: %w", err)
		}
	}

	r := &Renderer{
		opts:   o,
		pool:   layer.NewPool(),
		label:  label.New(o.locale),
		source: src,
	}
	r.label.SetDistance(o.distance)
	r.label.SetFormat(DefaultLabelFormat)
	r.setFontSize(DefaultLabelFontSize)
	r.driver = anim.NewDriver(o.clock, r.onFrame)
	return r, nil
}

// Resize sets the surface size used by subsequent draws.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: bounds %dx%d", ErrInvalidArgument, width, height)
	}
	if width == r.width && height == r.height {
		return nil
	}
	r.width, r.height = width, height
	r.pool.SetBounds(width, height)
	r.invalidate(InvalidateLayers)
	return nil
}

// Bounds returns the current surface size.
func (r *Renderer) Bounds() (width, height int) {
	return r.width, r.height
}

// Draw draws the circular variant.
//
// cfg is only read during the call. A nil cfg is a no-op. When animated is
// true a duration must be given; the progress stroke is revealed and the
// label counts up from the previously drawn value over that duration. A zero
// duration snaps to the final state.
func (r *Renderer) Draw(cfg *Config, animated bool, duration ...time.Duration) error {
	return r.draw(cfg, variantCircular, animated, duration)
}

// DrawLinear draws the linear variant. See Draw for the animation contract.
func (r *Renderer) DrawLinear(cfg *Config, animated bool, duration ...time.Duration) error {
	return r.draw(cfg, variantLinear, animated, duration)
}

func (r *Renderer) draw(cfg *Config, v variant, animated bool, duration []time.Duration) error {
	log := Logger()
	if cfg == nil {
		log.Debug("progress: draw skipped, no config", "variant", v)
		return nil
	}

	d, err := animationDuration(animated, duration)
	if err != nil {
		log.Warn("progress: draw rejected", "variant", v, "err", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("progress: draw rejected", "variant", v, "err", err)
		return err
	}
	if r.width <= 0 || r.height <= 0 {
		return ErrEmptyBounds
	}

	// A redraw always supersedes the label animation in flight.
	r.driver.Stop()
	r.pool.Reset()
	r.progress = nil

	before := r.pool.Stats()
	switch v {
	case variantLinear:
		err = r.buildLinear(cfg)
	default:
		err = r.buildCircular(cfg)
	}
	if err != nil {
		return fmt.Errorf("progress: %s draw: %w", v, err)
	}
	r.applyLabel(cfg)
	r.label.SnapToTarget()

	after := r.pool.Stats()
	if after.AllocatedShapes != before.AllocatedShapes || after.AllocatedGradients != before.AllocatedGradients {
		log.Debug("progress: pool grew",
			"shapes", after.AllocatedShapes, "gradients", after.AllocatedGradients)
	}
	log.Debug("progress: draw",
		"variant", v, "value", cfg.Value, "max", cfg.MaxValue, "animated", animated, "duration", d)

	r.invalidate(InvalidateLayers)
	if animated {
		r.animate(d)
	}
	return nil
}

func animationDuration(animated bool, duration []time.Duration) (time.Duration, error) {
	if !animated {
		return 0, nil
	}
	switch {
	case len(duration) == 0:
		return 0, fmt.Errorf("%w: animated draw requires a duration", ErrInvalidArgument)
	case len(duration) > 1:
		return 0, fmt.Errorf("%w: more than one duration", ErrInvalidArgument)
	case duration[0] < 0:
		return 0, fmt.Errorf("%w: negative duration %v", ErrInvalidArgument, duration[0])
	}
	return duration[0], nil
}

func (r *Renderer) buildCircular(cfg *Config) error {
	w, h := float64(r.width), float64(r.height)
	center := gg.Pt(w/2, h/2)
	start, end := cfg.ArcRange()

	track, err := r.pool.AcquireShape()
	if err != nil {
		return err
	}
	track.Path = geometry.Circular(center, cfg.Radius, start, end)
	track.LineWidth = cfg.LineWidth
	track.LineCap = gg.LineCapRound
	track.StrokeColor = cfg.TrackColor

	progress, err := r.pool.AcquireShape()
	if err != nil {
		return err
	}
	progress.Path = geometry.CircularProgress(center, cfg.Radius, start, end, cfg.Ratio())
	progress.LineWidth = cfg.LineWidth
	progress.LineCap = gg.LineCapRound
	progress.StrokeColor = gg.White
	r.progress = progress

	if len(cfg.GradientStops) > 0 {
		g, err := r.pool.AcquireGradient()
		if err != nil {
			return err
		}
		layer.Place(g, progress, cfg.GradientStops,
			layer.CircularPlacement(cfg.GradientAxis, w, h, center, cfg.Radius))
	}

	r.setLabelTarget(cfg.Value, center)
	return nil
}

func (r *Renderer) buildLinear(cfg *Config) error {
	w, h := float64(r.width), float64(r.height)
	const padding = geometry.LinearPadding

	track, err := r.pool.AcquireShape()
	if err != nil {
		return err
	}
	track.Path = geometry.Linear(w, h, padding)
	track.LineWidth = h
	track.LineCap = gg.LineCapRound
	track.StrokeColor = cfg.TrackColor

	progress, err := r.pool.AcquireShape()
	if err != nil {
		return err
	}
	progress.Path = geometry.LinearProgress(w, h, padding, cfg.MaxValue, cfg.Value)
	progress.LineWidth = h
	progress.LineCap = gg.LineCapRound
	progress.StrokeColor = gg.Blue
	r.progress = progress

	if len(cfg.GradientStops) > 0 {
		g, err := r.pool.AcquireGradient()
		if err != nil {
			return err
		}
		layer.Place(g, progress, cfg.GradientStops, layer.LinearPlacement(cfg.GradientAxis))
	}

	r.setLabelTarget(cfg.Value, geometry.LinearStart(h, padding))
	return nil
}

// setLabelTarget keeps the previous value as the animation origin while
// the label itself stays anchored at p.
func (r *Renderer) setLabelTarget(value float64, p gg.Point) {
	r.label.SetTarget(value, p)
	r.label.SetFromPoint(p)
}

// applyLabel applies the label overrides present in cfg. Absent overrides
// keep their previous values.
func (r *Renderer) applyLabel(cfg *Config) {
	if cfg.LabelFontSize != nil {
		r.setFontSize(*cfg.LabelFontSize)
	}
	if cfg.LabelOffsetRatio != nil {
		r.label.OffsetRatio = *cfg.LabelOffsetRatio
	}
	if cfg.LabelOffset != nil {
		r.label.Offset = *cfg.LabelOffset
	}
	if cfg.LabelFormat != nil {
		r.label.SetFormat(*cfg.LabelFormat)
	}
	if cfg.LabelColor != nil {
		r.label.Color = *cfg.LabelColor
	}
	r.label.Hidden = cfg.LabelHidden
}

func (r *Renderer) setFontSize(size float64) {
	if size == r.fontSize && r.label.Face != nil {
		return
	}
	r.fontSize = size
	r.label.Face = r.source.Face(size)
}

// animate starts the stroke reveal and the label driver. Both begin now and
// run for d but are not synchronized frame by frame.
func (r *Renderer) animate(d time.Duration) {
	if d > 0 && r.progress != nil {
		r.progress.SetReveal(anim.NewReveal(r.opts.clock.Now(), d))
	}
	if r.driver.Start(d) {
		Logger().Debug("progress: animation started", "duration", d)
	}
}

func (r *Renderer) onFrame(fraction float64) {
	r.label.Advance(fraction)
	if fraction >= 1 {
		Logger().Debug("progress: animation finished")
	}
	r.invalidate(InvalidateLabel)
}

func (r *Renderer) invalidate(what Invalidation) {
	if r.opts.invalidator != nil {
		r.opts.invalidator(what)
	}
}

// Tick delivers one frame-clock tick to the label animation. It returns
// whether the animation is still running.
func (r *Renderer) Tick(now time.Time) bool {
	_, running := r.driver.Tick(now)
	return running
}

// Run drives the label animation at the configured frame interval on the
// calling goroutine until it finishes or ctx is canceled. Each frame raises
// InvalidateLabel; the host repaints from its invalidator.
func (r *Renderer) Run(ctx context.Context) error {
	return r.driver.Run(ctx, r.opts.frameInterval)
}

// Animating reports whether the label animation or the stroke reveal is
// still in progress.
func (r *Renderer) Animating() bool {
	if r.driver.Running() {
		return true
	}
	if r.progress == nil {
		return false
	}
	rv, ok := r.progress.Reveal()
	return ok && !rv.Done(r.opts.clock.Now())
}

// Paint composites the visible layers onto dst in attach order and then
// paints the label.
func (r *Renderer) Paint(dst *gg.Context) error {
	now := r.opts.clock.Now()
	for _, l := range r.pool.Tree() {
		if l.IsMask() {
			continue
		}
		if err := l.Render(now); err != nil {
			return fmt.Errorf("progress: rendering %s layer: %w", l.Kind(), err)
		}
		dst.DrawImage(gg.ImageBufFromImage(l.Image()), 0, 0)
	}
	r.PaintLabel(dst)
	return nil
}

// PaintLabel paints only the label, with dst's state saved and restored
// around it. It reports whether the label was drawn.
func (r *Renderer) PaintLabel(dst *gg.Context) bool {
	dst.Push()
	defer dst.Pop()
	return r.label.Draw(dst)
}

// Layers returns the visible primitives of the last draw in paint order.
func (r *Renderer) Layers() []layer.Layer {
	return r.pool.Tree()
}

// Stats returns the layer pool statistics.
func (r *Renderer) Stats() layer.Stats {
	return r.pool.Stats()
}

// Label returns the label interpolator.
func (r *Renderer) Label() *label.Interpolator {
	return r.label
}
