package render

import (
	"math/big"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"

	"fixture-generator/primitive"
)

// Builtin renderers for structured standard types. They emit
// constructor calls instead of field-level struct literals, because the
// interesting state of these types lives in unexported fields.

func init() {
	mustRegister(reflect.TypeOf([]byte(nil)), func(rv reflect.Value, c Context) (string, error) {
		return c.binary(rv)
	})
	mustRegister(reflect.TypeOf(time.Time{}), renderTime)
	mustRegister(reflect.TypeOf(time.Duration(0)), renderDuration)
	mustRegister(reflect.TypeOf(uuid.UUID{}), renderUUID)
	mustRegister(reflect.TypeOf(url.URL{}), renderURL)
	mustRegister(reflect.TypeOf(big.Int{}), renderBigInt)
	mustRegister(reflect.TypeOf(&big.Int{}), renderBigIntPtr)
	mustRegister(reflect.TypeOf(big.Float{}), renderBigFloat)
	mustRegister(reflect.TypeOf(&big.Float{}), renderBigFloatPtr)
	mustRegister(reflect.TypeOf(big.Rat{}), renderBigRat)
	mustRegister(reflect.TypeOf(&big.Rat{}), renderBigRatPtr)
}

func mustRegister(t reflect.Type, fn Func) {
	if err := Register(t, fn); err != nil {
		panic(err)
	}
}

// renderTime reconstructs the instant, not the bit pattern: monotonic
// readings and location names do not survive a fixture round trip.
func renderTime(rv reflect.Value, _ Context) (string, error) {
	t := rv.Interface().(time.Time)
	if t.IsZero() {
		return "time.Time{}", nil
	}
	return "time.Unix(" + primitive.Int(t.Unix()) + ", " + primitive.Int(int64(t.Nanosecond())) + ").UTC()", nil
}

func renderDuration(rv reflect.Value, _ Context) (string, error) {
	return "time.Duration(" + primitive.Int(rv.Int()) + ")", nil
}

func renderUUID(rv reflect.Value, _ Context) (string, error) {
	u := rv.Interface().(uuid.UUID)
	return "uuid.MustParse(" + primitive.Quote(u.String()) + ")", nil
}

func renderURL(rv reflect.Value, _ Context) (string, error) {
	u := rv.Interface().(url.URL)
	return "fixture.URL(" + primitive.Quote(u.String()) + ")", nil
}

func renderBigInt(rv reflect.Value, _ Context) (string, error) {
	i := rv.Interface().(big.Int)
	return "*fixture.BigInt(" + primitive.Quote(i.String()) + ")", nil
}

func renderBigIntPtr(rv reflect.Value, _ Context) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	i := rv.Interface().(*big.Int)
	return "fixture.BigInt(" + primitive.Quote(i.String()) + ")", nil
}

func renderBigFloat(rv reflect.Value, _ Context) (string, error) {
	f := rv.Interface().(big.Float)
	return "*fixture.BigFloat(" + primitive.Quote(f.Text('g', -1)) + ")", nil
}

func renderBigFloatPtr(rv reflect.Value, _ Context) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	f := rv.Interface().(*big.Float)
	return "fixture.BigFloat(" + primitive.Quote(f.Text('g', -1)) + ")", nil
}

func renderBigRat(rv reflect.Value, _ Context) (string, error) {
	r := rv.Interface().(big.Rat)
	return "*fixture.BigRat(" + primitive.Quote(r.RatString()) + ")", nil
}

func renderBigRatPtr(rv reflect.Value, _ Context) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	r := rv.Interface().(*big.Rat)
	return "fixture.BigRat(" + primitive.Quote(r.RatString()) + ")", nil
}
