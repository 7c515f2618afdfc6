package render

import (
	"fmt"
	"reflect"

	"fixture-generator/descriptor"
	"fixture-generator/primitive"
)

// described renders a node through its registered descriptor. A custom
// RenderFn takes over wholesale; otherwise the generic property walk
// emits a keyed literal honoring order, labels and redaction.
func (c Context) described(rv reflect.Value, d descriptor.Descriptor) (string, error) {
	if d.Render != nil {
		return d.Render(rv, c)
	}
	if rv.Kind() != reflect.Struct {
		return "", c.Fail("descriptor registered for non-struct type " + rv.Type().String())
	}

	name := d.TypeName
	if name == "" {
		name = typeText(rv.Type())
	}

	items := make([]string, 0, len(d.Properties))
	for _, p := range d.Properties {
		if p.Ignored {
			continue
		}
		fv := rv.FieldByName(p.Name)
		if !fv.IsValid() || !fv.CanInterface() {
			return "", c.Fail("descriptor property " + p.Name + " has no readable field on " + rv.Type().String())
		}
		var text string
		switch p.Redaction {
		case descriptor.RedactMask:
			text = redactedText(fv, p.Mask)
		case descriptor.RedactHash:
			text = redactedText(fv, descriptor.Hash(propertyText(fv)))
		default:
			var err error
			// the breadcrumb carries the display label; the literal key
			// must stay the Go field name or the output will not compile
			text, err = c.Field(p.EffectiveLabel(), fv.Interface())
			if err != nil {
				return "", err
			}
		}
		items = append(items, p.Name+": "+text)
	}
	return composite(name, items, len(items) > 1), nil
}

// redactedText quotes a placeholder in the property's own string type so
// the literal stays assignable.
func redactedText(fv reflect.Value, placeholder string) string {
	quoted := primitive.Quote(placeholder)
	t := fv.Type()
	switch {
	case fv.Kind() == reflect.String && t.PkgPath() != "":
		return typeText(t) + "(" + quoted + ")"
	case fv.Kind() == reflect.Slice && t.Elem() == byteType:
		return typeText(t) + "(" + quoted + ")"
	default:
		return quoted
	}
}

// propertyText is the canonical input fed to the hash redaction. The
// real value never reaches the output, only its digest does.
func propertyText(fv reflect.Value) string {
	if fv.Kind() == reflect.String {
		return fv.String()
	}
	return fmt.Sprint(fv.Interface())
}
