// Package fixture holds the tiny runtime helpers that generated fixture
// files call. Keeping them here lets the engine emit single-expression
// literals for pointers, sets, binary payloads and big numbers.
//
// The parsing helpers panic on malformed input: their arguments are
// machine-generated literals, so a parse failure is a generator bug,
// not a runtime condition to handle.
package fixture

import (
	"math/big"
	"net/url"

	"github.com/mr-tron/base58"
)

// Ptr returns a pointer to v. It turns any value expression into a
// pointer expression without a helper variable.
func Ptr[T any](v T) *T {
	return &v
}

// SetOf builds a set from its elements.
func SetOf[T comparable](elems ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	return set
}

// Base58 decodes a base58 text back into the byte payload it encodes.
func Base58(s string) []byte {
	data, err := base58.Decode(s)
	if err != nil {
		panic("fixture: invalid base58 literal " + s + ": " + err.Error())
	}
	return data
}

// URL parses an absolute or relative URL text.
func URL(s string) url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic("fixture: invalid URL literal " + s + ": " + err.Error())
	}
	return *u
}

// BigInt parses a decimal big integer text.
func BigInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("fixture: invalid big integer literal " + s)
	}
	return i
}

// bigFloatPrec is the mantissa precision fixtures reconstruct at. It
// comfortably covers the shortest-roundtrip texts the engine emits.
const bigFloatPrec = 512

// BigFloat parses a big float text.
func BigFloat(s string) *big.Float {
	f, _, err := big.ParseFloat(s, 10, bigFloatPrec, big.ToNearestEven)
	if err != nil {
		panic("fixture: invalid big float literal " + s + ": " + err.Error())
	}
	return f
}

// BigRat parses a rational text in a/b or decimal form.
func BigRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("fixture: invalid rational literal " + s)
	}
	return r
}
