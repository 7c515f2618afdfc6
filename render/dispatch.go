package render

import "reflect"

// expr resolves one node. See the package comment for the order.
func (c Context) expr(rv reflect.Value) (string, error) {
	if !rv.IsValid() {
		return "nil", nil
	}
	if len(c.path) > c.opts.MaxDepth {
		return "", &DepthError{Depth: len(c.path), Path: c.Path()}
	}

	t := rv.Type()

	if t.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil", nil
		}
		return c.expr(rv.Elem())
	}

	if d, ok := c.descs.Lookup(t); ok {
		return c.described(rv, d)
	}
	if fn, ok := c.funcs.Lookup(t); ok {
		return fn(rv, c)
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return c.scalar(rv)
	case reflect.Pointer:
		return c.pointer(rv)
	case reflect.Slice, reflect.Array:
		return c.sequence(rv)
	case reflect.Map:
		return c.mapping(rv)
	case reflect.Struct:
		return c.structure(rv)
	default:
		// Chan, Func, UnsafePointer, Uintptr: no faithful reconstruction
		return "", unsupportedErr(c, rv)
	}
}

// pointer renders a non-nil pointer through the fixture.Ptr helper so
// the emitted expression stays a single value literal.
func (c Context) pointer(rv reflect.Value) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	release, err := c.enter(rv)
	if err != nil {
		return "", err
	}
	defer release()

	inner, err := c.expr(rv.Elem())
	if err != nil {
		return "", err
	}
	return "fixture.Ptr(" + inner + ")", nil
}
