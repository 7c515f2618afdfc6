package primitive

import (
	"math"
	"strconv"
	"strings"
)

// Scalar literal canonicalization. Every function here is a pure
// value-to-text mapping: identical input always yields identical text.

// Quote returns a double-quoted Go string literal with full escaping.
func Quote(s string) string {
	return strconv.Quote(s)
}

// QuoteRune returns a single-quoted Go rune literal.
// Rendering cannot tell a rune apart from a plain int32, so the engine
// never calls this on its own; it is exposed for custom renderers.
func QuoteRune(r rune) string {
	return strconv.QuoteRune(r)
}

// Bool returns "true" or "false".
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Int returns the decimal literal for a signed integer.
func Int(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Uint returns the decimal literal for an unsigned integer.
func Uint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// floats outside this band switch to exponent form; inside it the plain
// decimal form stays readable and round-trips exactly
const (
	floatPlainMax = 1e21
	floatPlainMin = 1e-4
)

// Float returns a canonical literal for a floating point value.
// Plain decimal form is used unless the magnitude requires exponent
// form. NaN and infinities render as math package constructors.
// bitSize must be 32 or 64 and controls shortest-roundtrip precision.
func Float(f float64, bitSize int) string {
	if special := floatSpecial(f, bitSize); special != "" {
		return special
	}

	abs := math.Abs(f)
	if f != 0 && (abs >= floatPlainMax || abs < floatPlainMin) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// floatSpecial maps NaN and the infinities to math package constructors.
// The math constructors produce float64, so 32-bit specials carry an
// explicit conversion to stay assignable in float32 positions.
func floatSpecial(f float64, bitSize int) string {
	var special string
	switch {
	case math.IsNaN(f):
		special = "math.NaN()"
	case math.IsInf(f, 1):
		special = "math.Inf(1)"
	case math.IsInf(f, -1):
		special = "math.Inf(-1)"
	default:
		return ""
	}
	if bitSize == 32 {
		return "float32(" + special + ")"
	}
	return special
}

// Complex returns a complex(re, im) constructor literal.
// bitSize is the size of the whole complex value (64 or 128).
func Complex(c complex128, bitSize int) string {
	parts := bitSize / 2
	return "complex(" + Float(real(c), parts) + ", " + Float(imag(c), parts) + ")"
}
