package render

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
)

// Sentinels for errors.Is classification. Every structured render error
// unwraps to exactly one of them.
var (
	ErrUnsupportedType = errors.New("render: unsupported type")
	ErrReflection      = errors.New("render: reflection failure")
	ErrCycle           = errors.New("render: reference cycle")
	ErrDepthExceeded   = errors.New("render: max depth exceeded")
)

// UnsupportedTypeError reports a node whose type has no rendering by any
// resolution path (channels, functions, unsafe pointers).
type UnsupportedTypeError struct {
	TypeName string
	Path     Path
	// Detail is a diagnostic dump of the offending value.
	Detail string
}

func (e *UnsupportedTypeError) Error() string {
	msg := "render: unsupported type " + e.TypeName + at(e.Path)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// ReflectionError reports a node the reflection fallback could not
// faithfully reconstruct, such as a non-zero unexported field.
type ReflectionError struct {
	Reason string
	Path   Path
}

func (e *ReflectionError) Error() string {
	return "render: reflection failure" + at(e.Path) + ": " + e.Reason
}

func (e *ReflectionError) Unwrap() error { return ErrReflection }

// CycleError reports a reference cycle caught by the identity guard.
type CycleError struct {
	TypeName string
	Path     Path
}

func (e *CycleError) Error() string {
	return "render: reference cycle through " + e.TypeName + at(e.Path)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// DepthError reports a traversal deeper than the configured ceiling.
type DepthError struct {
	Depth int
	Path  Path
}

func (e *DepthError) Error() string {
	return "render: max depth exceeded" + at(e.Path)
}

func (e *DepthError) Unwrap() error { return ErrDepthExceeded }

func at(p Path) string {
	if len(p) == 0 {
		return ""
	}
	return " at " + p.String()
}

func unsupportedErr(c Context, rv reflect.Value) error {
	e := &UnsupportedTypeError{
		TypeName: rv.Type().String(),
		Path:     c.Path(),
	}
	if rv.CanInterface() {
		e.Detail = spew.Sprintf("%#v", rv.Interface())
	}
	return e
}
