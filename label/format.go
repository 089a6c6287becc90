package label

import (
	"fmt"
	"math"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultFormat renders the value with two decimals and a percent sign.
const DefaultFormat = "%.2f%%"

var (
	// Integer conversions select the integer formatting path.
	integerVerbRe = regexp.MustCompile(`%(.*)d`)
	integerIRe    = regexp.MustCompile(`%(.*)i`)

	// %i is not a Go verb; flags, width and precision are kept.
	iVerbRe = regexp.MustCompile(`%([-+# 0]*[0-9]*(?:\.[0-9]+)?)i`)
)

// IsIntegerFormat reports whether format contains a %...d or %...i
// conversion, in which case the value is truncated to an integer before
// formatting.
func IsIntegerFormat(format string) bool {
	return integerVerbRe.MatchString(format) || integerIRe.MatchString(format)
}

// goFormat rewrites %i conversions to %d.
func goFormat(format string) string {
	return iVerbRe.ReplaceAllString(format, "%${1}d")
}

// Formatter renders numbers with a printf-style format, optionally in a
// given locale.
type Formatter struct {
	format  string
	goFmt   string
	integer bool

	// printer is nil for plain printf output.
	printer *message.Printer
}

// NewFormatter creates a formatter. An empty format uses DefaultFormat.
//
// With language.Und the output is plain printf: no digit grouping or
// localized separators. Any other tag formats through an x/text printer
// for that locale, which groups digits (12345 becomes "12,345" in English).
func NewFormatter(format string, tag language.Tag) *Formatter {
	if format == "" {
		format = DefaultFormat
	}
	f := &Formatter{
		format:  format,
		goFmt:   goFormat(format),
		integer: IsIntegerFormat(format),
	}
	if tag != language.Und {
		f.printer = message.NewPrinter(tag)
	}
	return f
}

// Format returns the format string as given.
func (f *Formatter) Format() string { return f.format }

// IsInteger reports whether the integer path is used.
func (f *Formatter) IsInteger() bool { return f.integer }

// Sprint formats v.
func (f *Formatter) Sprint(v float64) string {
	var arg any = v
	if f.integer {
		arg = int64(math.Trunc(v))
	}
	if f.printer == nil {
		return fmt.Sprintf(f.goFmt, arg)
	}
	return f.printer.Sprintf(f.goFmt, arg)
}
