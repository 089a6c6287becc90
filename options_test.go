package progress

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/progress/anim"
	"github.com/gogpu/progress/label"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if _, ok := o.clock.(anim.SystemClock); !ok {
		t.Errorf("default clock = %T, want anim.SystemClock", o.clock)
	}
	if o.frameInterval != anim.DefaultFrameInterval {
		t.Errorf("default frameInterval = %v, want %v", o.frameInterval, anim.DefaultFrameInterval)
	}
	if o.distance != label.Euclidean {
		t.Errorf("default distance = %v, want Euclidean", o.distance)
	}
	if o.locale != language.Und {
		t.Errorf("default locale = %v, want und", o.locale)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	WithClock(nil)(&o)
	WithFrameInterval(0)(&o)
	WithFrameInterval(-time.Second)(&o)

	if o.clock == nil {
		t.Error("WithClock(nil) cleared the clock")
	}
	if o.frameInterval != anim.DefaultFrameInterval {
		t.Errorf("frameInterval = %v after invalid options, want default", o.frameInterval)
	}
}

func TestOptionsApply(t *testing.T) {
	clock := anim.NewManualClock(time.Unix(0, 0))
	var got []Invalidation

	o := defaultOptions()
	for _, opt := range []Option{
		WithClock(clock),
		WithInvalidator(func(i Invalidation) { got = append(got, i) }),
		WithLocale(language.German),
		WithDistance(label.LegacyDistance),
		WithFrameInterval(time.Second / 30),
	} {
		opt(&o)
	}

	if o.clock != clock {
		t.Error("WithClock() not applied")
	}
	o.invalidator(InvalidateLabel)
	if len(got) != 1 || got[0] != InvalidateLabel {
		t.Errorf("invalidator received %v, want [label]", got)
	}
	if o.locale != language.German {
		t.Errorf("locale = %v, want de", o.locale)
	}
	if o.distance != label.LegacyDistance {
		t.Errorf("distance = %v, want LegacyDistance", o.distance)
	}
	if o.frameInterval != time.Second/30 {
		t.Errorf("frameInterval = %v, want %v", o.frameInterval, time.Second/30)
	}
}

func TestInvalidationString(t *testing.T) {
	if s := InvalidateLayers.String(); s != "layers" {
		t.Errorf("InvalidateLayers.String() = %q", s)
	}
	if s := InvalidateLabel.String(); s != "label" {
		t.Errorf("InvalidateLabel.String() = %q", s)
	}
}
