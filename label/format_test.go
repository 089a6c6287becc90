package label

import (
	"testing"

	"golang.org/x/text/language"
)

func TestIsIntegerFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"%d", true},
		{"%i", true},
		{"%3d items", true},
		{"%.2f%%", false},
		{"%f", false},
		{"%.1f", false},
		{"value: %05i", true},
	}

	for _, tt := range tests {
		if got := IsIntegerFormat(tt.format); got != tt.want {
			t.Errorf("IsIntegerFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestFormatterSprint(t *testing.T) {
	tests := []struct {
		format string
		v      float64
		want   string
	}{
		{"", 7, "7.00%"},
		{DefaultFormat, 42.5, "42.50%"},
		{"%d", 7.9, "7"},
		{"%i", 7.9, "7"},
		{"%i%%", -3.7, "-3%"},
		{"%.1f", 0.5, "0.5"},
		{"%d", 12345.6, "12345"},
		{DefaultFormat, 12345.678, "12345.68%"},
		{"%i", -1000000, "-1000000"},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.format, language.Und)
		if got := f.Sprint(tt.v); got != tt.want {
			t.Errorf("NewFormatter(%q).Sprint(%v) = %q, want %q", tt.format, tt.v, got, tt.want)
		}
	}
}

func TestFormatterLocale(t *testing.T) {
	tests := []struct {
		format string
		v      float64
		want   string
	}{
		{"%d", 12345.6, "12,345"},
		{DefaultFormat, 12345.678, "12,345.68%"},
		{"%d", 999, "999"},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.format, language.English)
		if got := f.Sprint(tt.v); got != tt.want {
			t.Errorf("NewFormatter(%q, en).Sprint(%v) = %q, want %q", tt.format, tt.v, got, tt.want)
		}
	}
}

func TestFormatterDefault(t *testing.T) {
	f := NewFormatter("", language.Und)
	if f.Format() != DefaultFormat {
		t.Errorf("Format() = %q, want %q", f.Format(), DefaultFormat)
	}
	if f.IsInteger() {
		t.Error("IsInteger() = true for default format")
	}
}
