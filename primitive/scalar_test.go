package primitive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixture-generator/primitive"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, primitive.Quote("plain"))
	assert.Equal(t, `"line\nbreak"`, primitive.Quote("line\nbreak"))
	assert.Equal(t, `"quote\"inside"`, primitive.Quote(`quote"inside`))
	assert.Equal(t, `"nul\x00byte"`, primitive.Quote("nul\x00byte"))
	assert.Equal(t, `"é"`, primitive.Quote("é"))
}

func TestFloatPlainForm(t *testing.T) {
	assert.Equal(t, "0.0", primitive.Float(0, 64))
	assert.Equal(t, "1.0", primitive.Float(1, 64))
	assert.Equal(t, "-2.5", primitive.Float(-2.5, 64))
	assert.Equal(t, "0.0001", primitive.Float(0.0001, 64))
	assert.Equal(t, "3.14159", primitive.Float(3.14159, 64))
}

func TestFloatExponentForm(t *testing.T) {
	// magnitude requires exponent form on both ends of the band
	assert.Equal(t, "1e+21", primitive.Float(1e21, 64))
	assert.Equal(t, "1e-05", primitive.Float(0.00001, 64))
	assert.Equal(t, "-3e+22", primitive.Float(-3e22, 64))
}

func TestFloatSpecials(t *testing.T) {
	assert.Equal(t, "math.NaN()", primitive.Float(math.NaN(), 64))
	assert.Equal(t, "math.Inf(1)", primitive.Float(math.Inf(1), 64))
	assert.Equal(t, "math.Inf(-1)", primitive.Float(math.Inf(-1), 64))

	// 32-bit specials carry a conversion so they fit float32 positions
	assert.Equal(t, "float32(math.NaN())", primitive.Float(math.NaN(), 32))
	assert.Equal(t, "float32(math.Inf(1))", primitive.Float(math.Inf(1), 32))
}

func TestFloat32ShortestRoundtrip(t *testing.T) {
	// 0.1 has a shorter shortest-representation at 32 bits
	assert.Equal(t, "0.1", primitive.Float(float64(float32(0.1)), 32))
}

func TestComplex(t *testing.T) {
	assert.Equal(t, "complex(1.5, -2.0)", primitive.Complex(complex(1.5, -2), 128))
}

func TestIntUint(t *testing.T) {
	assert.Equal(t, "-9223372036854775808", primitive.Int(math.MinInt64))
	assert.Equal(t, "18446744073709551615", primitive.Uint(math.MaxUint64))
}
