package render

import (
	"reflect"
	"sort"

	"github.com/mr-tron/base58"

	"fixture-generator/primitive"
)

var (
	byteType     = reflect.TypeOf(byte(0))
	emptyValType = reflect.TypeOf(struct{}{})
)

// sequence renders slices and arrays. Nil slices stay nil; byte slices
// take the binary path; one element stays inline, more go one per line.
func (c Context) sequence(rv reflect.Value) (string, error) {
	t := rv.Type()
	if t.Kind() == reflect.Slice {
		if t.Elem() == byteType {
			return c.binary(rv)
		}
		if rv.IsNil() {
			return "nil", nil
		}
		if rv.Len() > 0 {
			release, err := c.enter(rv)
			if err != nil {
				return "", err
			}
			defer release()
		}
	}

	items := make([]string, rv.Len())
	for i := range items {
		text, err := c.descend(IndexSegment(i)).expr(rv.Index(i))
		if err != nil {
			return "", err
		}
		items[i] = text
	}
	return composite(typeText(t), items, len(items) > 1), nil
}

// binary renders byte slices: short payloads as inline hex literals,
// longer ones through the compact base58 helper.
func (c Context) binary(rv reflect.Value) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	data := rv.Bytes()

	var expr string
	inline := len(data) <= c.opts.InlineBinaryThreshold
	if inline {
		expr = hexLiteral(data)
	} else {
		expr = "fixture.Base58(" + primitive.Quote(base58.Encode(data)) + ")"
	}

	t := rv.Type()
	if t.PkgPath() == "" {
		return expr, nil
	}
	if inline {
		// named byte slice: put the hex bytes straight into its literal
		return typeText(t) + expr[len("[]byte"):], nil
	}
	return typeText(t) + "(" + expr + ")", nil
}

func hexLiteral(data []byte) string {
	if len(data) == 0 {
		return "[]byte{}"
	}
	const digits = "0123456789abcdef"
	buf := make([]byte, 0, 6*len(data)+8)
	buf = append(buf, "[]byte{"...)
	for i, b := range data {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, '0', 'x', digits[b>>4], digits[b&0x0f])
	}
	buf = append(buf, '}')
	return string(buf)
}

// mapping renders maps. Sets (struct{} values) go through the set
// helper; everything else becomes a keyed literal, one entry per line,
// ordered by rendered key text or by the key's natural order.
func (c Context) mapping(rv reflect.Value) (string, error) {
	if rv.IsNil() {
		return "nil", nil
	}
	t := rv.Type()
	if t.Elem() == emptyValType {
		return c.set(rv)
	}

	release, err := c.enter(rv)
	if err != nil {
		return "", err
	}
	defer release()

	type entry struct {
		key     reflect.Value
		keyText string
		valText string
	}
	entries := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		kText, err := c.expr(iter.Key())
		if err != nil {
			return "", err
		}
		vText, err := c.descend(KeySegment(kText)).expr(iter.Value())
		if err != nil {
			return "", err
		}
		entries = append(entries, entry{key: iter.Key(), keyText: kText, valText: vText})
	}

	if c.opts.SortMapKeys {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].keyText < entries[j].keyText
		})
	} else {
		sort.Slice(entries, func(i, j int) bool {
			return lessNatural(entries[i].key, entries[j].key, entries[i].keyText, entries[j].keyText)
		})
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.keyText + ": " + e.valText
	}
	return composite(typeText(t), items, len(items) > 0), nil
}

// set renders map[T]struct{} through the fixture.SetOf helper so the
// output reads as the set it models.
func (c Context) set(rv reflect.Value) (string, error) {
	release, err := c.enter(rv)
	if err != nil {
		return "", err
	}
	defer release()

	t := rv.Type()
	if rv.Len() == 0 {
		// no elements to infer the type parameter from
		expr := "fixture.SetOf[" + typeText(t.Key()) + "]()"
		if t.PkgPath() != "" {
			return typeText(t) + "(" + expr + ")", nil
		}
		return expr, nil
	}

	type elem struct {
		key  reflect.Value
		text string
	}
	elems := make([]elem, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		text, err := c.expr(iter.Key())
		if err != nil {
			return "", err
		}
		elems = append(elems, elem{key: iter.Key(), text: text})
	}

	if c.opts.DeterministicSetOrder {
		sort.Slice(elems, func(i, j int) bool {
			return elems[i].text < elems[j].text
		})
	} else {
		sort.Slice(elems, func(i, j int) bool {
			return lessNatural(elems[i].key, elems[j].key, elems[i].text, elems[j].text)
		})
	}

	items := make([]string, len(elems))
	for i, e := range elems {
		items[i] = e.text
	}
	expr := call("fixture.SetOf", items, len(items) > 1)
	if t.PkgPath() != "" {
		return typeText(t) + "(" + expr + ")", nil
	}
	return expr, nil
}

// lessNatural orders two keys of the same type by their underlying
// value where one exists, falling back to rendered text. Go randomizes
// map iteration, so some total order is required either way.
func lessNatural(a, b reflect.Value, aText, bText string) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	default:
		return aText < bText
	}
}
