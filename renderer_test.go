package progress

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/progress/anim"
	"github.com/gogpu/progress/geometry"
	"github.com/gogpu/progress/layer"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type invalidations []Invalidation

func (iv *invalidations) record(what Invalidation) { *iv = append(*iv, what) }

func (iv invalidations) count(what Invalidation) int {
	n := 0
	for _, w := range iv {
		if w == what {
			n++
		}
	}
	return n
}

func newTestRenderer(t *testing.T, width, height int) (*Renderer, *anim.ManualClock, *invalidations) {
	t.Helper()
	clock := anim.NewManualClock(epoch)
	iv := &invalidations{}
	r, err := NewRenderer(WithClock(clock), WithInvalidator(iv.record))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if err := r.Resize(width, height); err != nil {
		t.Fatalf("Resize(%d, %d) error = %v", width, height, err)
	}
	return r, clock, iv
}

func progressShape(t *testing.T, r *Renderer) *layer.Shape {
	t.Helper()
	tree := r.Layers()
	if len(tree) < 2 {
		t.Fatalf("Layers() has %d entries, want at least 2", len(tree))
	}
	s, ok := tree[1].(*layer.Shape)
	if !ok {
		t.Fatalf("Layers()[1] is %T, want *layer.Shape", tree[1])
	}
	return s
}

func labelNumber(t *testing.T, r *Renderer) float64 {
	t.Helper()
	n, _, ok := r.Label().Current()
	if !ok {
		t.Fatal("label has no current state")
	}
	return n
}

func TestDrawNilConfig(t *testing.T) {
	r, _, iv := newTestRenderer(t, 200, 200)
	*iv = nil

	if err := r.Draw(nil, true); err != nil {
		t.Fatalf("Draw(nil) error = %v, want nil", err)
	}
	if n := len(r.Layers()); n != 0 {
		t.Errorf("Layers() = %d entries, want 0", n)
	}
	if len(*iv) != 0 {
		t.Errorf("invalidations = %v, want none", *iv)
	}
}

func TestDrawRejectsBadRequests(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)

	tests := []struct {
		name     string
		animated bool
		duration []time.Duration
	}{
		{"animated without duration", true, nil},
		{"negative duration", true, []time.Duration{-time.Second}},
		{"two durations", true, []time.Duration{time.Second, time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Draw(DefaultConfig(), tt.animated, tt.duration...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Draw() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestDrawZeroMaxValue(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.MaxValue = 0

	err := r.Draw(cfg, false)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("Draw() error = %v, want *ConfigError", err)
	}
	if ce.Field != "MaxValue" {
		t.Errorf("ConfigError.Field = %q, want %q", ce.Field, "MaxValue")
	}
	if n := len(r.Layers()); n != 0 {
		t.Errorf("Layers() = %d entries after rejected draw, want 0", n)
	}
}

func TestDrawEmptyBounds(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if err := r.Draw(DefaultConfig(), false); !errors.Is(err, ErrEmptyBounds) {
		t.Errorf("Draw() error = %v, want ErrEmptyBounds", err)
	}
	if err := r.Resize(0, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Resize(0, 10) error = %v, want ErrInvalidArgument", err)
	}
}

func TestDrawCircularGeometry(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.Value = 7
	cfg.Radius = 90

	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	tree := r.Layers()
	if len(tree) != 3 {
		t.Fatalf("Layers() = %d entries, want 3 (track, progress, gradient)", len(tree))
	}
	if tree[0].Kind() != layer.KindShape || tree[1].Kind() != layer.KindShape || tree[2].Kind() != layer.KindGradient {
		t.Errorf("layer kinds = %v %v %v, want shape shape gradient", tree[0].Kind(), tree[1].Kind(), tree[2].Kind())
	}

	track := tree[0].(*layer.Shape)
	arc := track.Path.Segments()[0].(geometry.Arc)
	if got := geometry.Degrees(arc.Sweep); math.Abs(got-270) > 1e-9 {
		t.Errorf("track sweep = %v, want 270", got)
	}

	progress := progressShape(t, r)
	if !progress.IsMask() {
		t.Error("progress shape should be the gradient mask")
	}
	arc = progress.Path.Segments()[0].(geometry.Arc)
	if got := geometry.Degrees(arc.Sweep); math.Abs(got-189) > 1e-9 {
		t.Errorf("progress sweep = %v, want 189", got)
	}
	if got := geometry.Degrees(arc.End()); math.Abs(got-324) > 1e-9 {
		t.Errorf("progress end = %v, want 324", got)
	}
	if arc.Radius != 90 || arc.Center != gg.Pt(100, 100) {
		t.Errorf("progress arc = %+v, want radius 90 centered at (100,100)", arc)
	}
	if progress.LineWidth != cfg.LineWidth {
		t.Errorf("progress LineWidth = %v, want %v", progress.LineWidth, cfg.LineWidth)
	}

	if _, p, _ := r.Label().Current(); p != gg.Pt(100, 100) {
		t.Errorf("label anchor = %v, want center", p)
	}
}

func TestDrawLinearGeometry(t *testing.T) {
	r, _, _ := newTestRenderer(t, 300, 20)
	cfg := DefaultConfig()
	cfg.Value = 75
	cfg.MaxValue = 100
	cfg.GradientStops = nil

	if err := r.DrawLinear(cfg, false); err != nil {
		t.Fatalf("DrawLinear() error = %v", err)
	}
	if n := len(r.Layers()); n != 2 {
		t.Fatalf("Layers() = %d entries, want 2 without gradient stops", n)
	}

	progress := progressShape(t, r)
	if progress.IsMask() {
		t.Error("progress shape should be visible without gradient stops")
	}
	if progress.StrokeColor != gg.Blue {
		t.Errorf("progress color = %v, want blue", progress.StrokeColor)
	}
	if progress.LineWidth != 20 {
		t.Errorf("progress LineWidth = %v, want surface height 20", progress.LineWidth)
	}
	end, ok := progress.Path.End()
	if !ok || end != gg.Pt(225, 10) {
		t.Errorf("progress end = %v, %v; want (225,10)", end, ok)
	}

	if _, p, _ := r.Label().Current(); p != gg.Pt(20, 10) {
		t.Errorf("label anchor = %v, want track start (20,10)", p)
	}
}

func TestDrawFlatCircularProgress(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.GradientStops = nil

	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := progressShape(t, r).StrokeColor; got != gg.White {
		t.Errorf("progress color = %v, want white", got)
	}
	if n := len(r.Layers()); n != 2 {
		t.Errorf("Layers() = %d entries, want 2", n)
	}
}

func TestDrawZeroDurationSnaps(t *testing.T) {
	r, clock, iv := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.Value = 4
	*iv = nil

	if err := r.Draw(cfg, true, 0); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if r.Animating() {
		t.Error("Animating() = true after zero-duration draw")
	}
	if got := labelNumber(t, r); got != 4 {
		t.Errorf("label number = %v, want 4", got)
	}
	if r.Tick(clock.Advance(time.Second)) {
		t.Error("Tick() = true on idle renderer")
	}
	if got := iv.count(InvalidateLabel); got != 0 {
		t.Errorf("label invalidations = %d, want 0", got)
	}
	if got := iv.count(InvalidateLayers); got != 1 {
		t.Errorf("layer invalidations = %d, want 1", got)
	}
	if got := progressShape(t, r).StrokeEnd(clock.Now()); got != 1 {
		t.Errorf("StrokeEnd() = %v, want 1", got)
	}
}

func TestDrawAnimated(t *testing.T) {
	r, clock, iv := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.Value = 2
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	cfg.Value = 6
	*iv = nil
	if err := r.Draw(cfg, true, time.Second); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if !r.Animating() {
		t.Fatal("Animating() = false after animated draw")
	}
	// The draw itself snaps to the target; the first tick rewinds to the
	// previous value.
	if got := labelNumber(t, r); got != 6 {
		t.Errorf("label number before first tick = %v, want 6", got)
	}

	if !r.Tick(clock.Now()) {
		t.Fatal("Tick() = false at start")
	}
	if got := labelNumber(t, r); got != 2 {
		t.Errorf("label number at start = %v, want 2", got)
	}

	if !r.Tick(clock.Advance(500 * time.Millisecond)) {
		t.Fatal("Tick() = false halfway")
	}
	if got := labelNumber(t, r); math.Abs(got-4) > 1e-9 {
		t.Errorf("label number halfway = %v, want 4", got)
	}
	if got := progressShape(t, r).StrokeEnd(clock.Now()); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("StrokeEnd() halfway = %v, want 0.5", got)
	}

	if r.Tick(clock.Advance(time.Second)) {
		t.Error("Tick() = true after the duration elapsed")
	}
	if got := labelNumber(t, r); got != 6 {
		t.Errorf("label number at end = %v, want 6", got)
	}
	if r.Animating() {
		t.Error("Animating() = true after the duration elapsed")
	}
	if got := iv.count(InvalidateLabel); got != 3 {
		t.Errorf("label invalidations = %d, want 3", got)
	}
}

func TestRedrawStopsAnimation(t *testing.T) {
	r, clock, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	if err := r.Draw(cfg, true, time.Second); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	cfg.Value = 9
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if r.Tick(clock.Advance(100 * time.Millisecond)) {
		t.Error("Tick() = true after a non-animated redraw")
	}
	if got := labelNumber(t, r); got != 9 {
		t.Errorf("label number = %v, want 9", got)
	}
}

func TestRedrawReusesLayers(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()

	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	first := append([]layer.Layer(nil), r.Layers()...)

	cfg.Value = 5
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	second := r.Layers()

	if len(first) != len(second) {
		t.Fatalf("layer count changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("layer %d was not reused", i)
		}
	}
	stats := r.Stats()
	if stats.AllocatedShapes != 2 || stats.AllocatedGradients != 1 {
		t.Errorf("Stats() = %+v, want 2 shapes and 1 gradient allocated", stats)
	}
}

func TestLabelOverridesPersist(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	format := "%d"
	color := gg.RGB(1, 0, 0)
	cfg.LabelFormat = &format
	cfg.LabelColor = &color

	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	next := DefaultConfig()
	next.Value = 3.7
	if err := r.Draw(next, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := r.Label().Format(); got != "%d" {
		t.Errorf("label format = %q, want %q", got, "%d")
	}
	if got := r.Label().Color; got != color {
		t.Errorf("label color = %v, want %v", got, color)
	}
	if s, _ := r.Label().Text(); s != "3" {
		t.Errorf("label text = %q, want %q", s, "3")
	}
}

func TestLabelHidden(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 200)
	cfg := DefaultConfig()
	cfg.LabelHidden = true
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	dc := gg.NewContext(200, 200)
	if r.PaintLabel(dc) {
		t.Error("PaintLabel() = true for a hidden label")
	}
}

func TestPaint(t *testing.T) {
	r, _, _ := newTestRenderer(t, 100, 100)
	cfg := DefaultConfig()
	cfg.Radius = 40
	cfg.LineWidth = 10
	cfg.GradientStops = nil
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	dc := gg.NewContext(100, 100)
	if err := r.Paint(dc); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	img := dc.Image()

	// Top of the ring lies on the track.
	if _, _, _, a := img.At(50, 10).RGBA(); a == 0 {
		t.Error("track pixel at (50,10) is transparent")
	}
	// The bottom is the gap between the end and start angles.
	if _, _, _, a := img.At(50, 90).RGBA(); a != 0 {
		t.Error("gap pixel at (50,90) is painted")
	}
}

func TestLabelLargeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Value = 12345.678
	cfg.MaxValue = 20000

	r, _, _ := newTestRenderer(t, 200, 200)
	if err := r.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if s, _ := r.Label().Text(); s != "12345.68%" {
		t.Errorf("label text = %q, want %q", s, "12345.68%")
	}

	localized, err := NewRenderer(WithLocale(language.English))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if err := localized.Resize(200, 200); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if err := localized.Draw(cfg, false); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if s, _ := localized.Label().Text(); s != "12,345.68%" {
		t.Errorf("localized label text = %q, want %q", s, "12,345.68%")
	}
}
