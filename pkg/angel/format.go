package angel

import (
	"math"
	"strconv"
)

// Boolean literals. These differ from Go's strconv.FormatBool on purpose:
// every target language prints the capitalized form.
const (
	TrueText  = "True"
	FalseText = "False"
)

// FormatOptions configures value rendering.
type FormatOptions struct {
	// FloatPrecision is the number of significant digits for floating point
	// values in %g style. -1 selects the shortest text that round-trips.
	// Default: 6, matching a C++ stream with default settings.
	FloatPrecision int
}

// DefaultFormatOptions returns the default rendering configuration.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		FloatPrecision: 6,
	}
}

// Formatter renders values to text. The same Formatter is used for a
// standalone value and for each element of a sequence, so both always agree.
//
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	opts FormatOptions
}

// NewFormatter creates a Formatter with custom options.
func NewFormatter(opts FormatOptions) Formatter {
	return Formatter{opts: opts}
}

// DefaultFormatter returns a Formatter using DefaultFormatOptions.
func DefaultFormatter() Formatter {
	return NewFormatter(DefaultFormatOptions())
}

// Options returns the formatter's configuration.
func (f Formatter) Options() FormatOptions {
	return f.opts
}

// Text returns the textual form of v.
//
// Values and sequences are rendered with this formatter's options. Any other
// Formattable renders through its own String method. A nil v renders as the
// empty string.
func (f Formatter) Text(v Formattable) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Value:
		return f.value(x)
	case lowerer:
		return renderToString(x.lower(f))
	default:
		return v.String()
	}
}

// value renders a tagged scalar.
func (f Formatter) value(v Value) string {
	switch v.kind {
	case KindBool:
		if v.b {
			return TrueText
		}
		return FalseText
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return formatFloat(v.f, v.bits, f.opts.FloatPrecision)
	case KindChar:
		return string(rune(v.i))
	case KindText:
		return v.s
	default:
		return ""
	}
}

// formatFloat renders f in %g style with prec significant digits.
// Non-finite values use the lower-case C spellings.
func formatFloat(f float64, bits, prec int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if bits != 32 {
		bits = 64
	}
	if prec < -1 {
		prec = -1
	}
	return strconv.FormatFloat(f, 'g', prec, bits)
}
