package render

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"fixture-generator/primitive"
)

// scalar renders a value whose kind is a scalar. Predeclared types emit
// the bare literal; named types wrap it in a conversion, or use the
// Stringer constant name when the shorthand option allows it.
func (c Context) scalar(rv reflect.Value) (string, error) {
	raw, err := c.scalarRaw(rv)
	if err != nil {
		return "", err
	}

	t := rv.Type()
	if t.PkgPath() == "" {
		return raw, nil
	}

	if c.opts.ForceEnumShorthand && primitive.FromReflectType(t) == primitive.KindScalarAlias {
		if name, ok := stringerConstant(rv); ok {
			return qualifier(t) + name, nil
		}
	}
	return typeText(t) + "(" + raw + ")", nil
}

func (c Context) scalarRaw(rv reflect.Value) (string, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return primitive.Bool(rv.Bool()), nil
	case reflect.String:
		return primitive.Quote(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return primitive.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return primitive.Uint(rv.Uint()), nil
	case reflect.Float32:
		return primitive.Float(rv.Float(), 32), nil
	case reflect.Float64:
		return primitive.Float(rv.Float(), 64), nil
	case reflect.Complex64:
		return primitive.Complex(rv.Complex(), 64), nil
	case reflect.Complex128:
		return primitive.Complex(rv.Complex(), 128), nil
	default:
		return "", unsupportedErr(c, rv)
	}
}

// stringerConstant returns the value's Stringer text when it forms a
// plain identifier usable as a constant reference. Best effort: the
// constant is not verified to exist in the package.
func stringerConstant(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	s, ok := rv.Interface().(fmt.Stringer)
	if !ok {
		return "", false
	}
	name := s.String()
	if !isIdentifier(name) {
		return "", false
	}
	return name, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// qualifier returns the package prefix of a named type's literal text,
// including the trailing dot, or "" for same-package types.
func qualifier(t reflect.Type) string {
	ts := t.String()
	if i := strings.LastIndex(ts, "."); i >= 0 {
		return ts[:i+1]
	}
	return ""
}

// structure is the reflection fallback for struct types with no
// descriptor and no registered renderer: a keyed literal over the
// exported fields in declaration order.
func (c Context) structure(rv reflect.Value) (string, error) {
	t := rv.Type()
	items := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)
		if !f.IsExported() {
			if fv.IsZero() {
				// zero members need no assignment to reconstruct
				continue
			}
			return "", &ReflectionError{
				Reason: "unexported field " + f.Name + " holds a non-zero value",
				Path:   c.Path(),
			}
		}
		text, err := c.descend(FieldSegment(f.Name)).expr(fv)
		if err != nil {
			return "", err
		}
		items = append(items, f.Name+": "+text)
	}
	return composite(typeText(t), items, len(items) > 1), nil
}
