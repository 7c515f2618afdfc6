package render

import (
	"reflect"
	"strings"
)

// typeText returns the Go source text naming t in a literal position.
// reflect's String form is already package-qualified source syntax; the
// one cosmetic fix is spelling byte slices the way people write them.
func typeText(t reflect.Type) string {
	s := t.String()
	if s == "[]uint8" {
		return "[]byte"
	}
	return s
}

// composite assembles a braced literal from already-rendered items.
// A single short item stays inline; anything else goes one item per
// line with trailing commas, items indented one level.
func composite(name string, items []string, multiline bool) string {
	if len(items) == 0 {
		return name + "{}"
	}
	return name + "{" + body(items, multiline) + "}"
}

// call assembles a function call the same way composite assembles a
// literal.
func call(fn string, items []string, multiline bool) string {
	if len(items) == 0 {
		return fn + "()"
	}
	return fn + "(" + body(items, multiline) + ")"
}

func body(items []string, multiline bool) string {
	for _, it := range items {
		if strings.Contains(it, "\n") {
			multiline = true
			break
		}
	}
	if !multiline {
		return strings.Join(items, ", ")
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	for _, it := range items {
		sb.WriteString(indentAll(it))
		sb.WriteString(",\n")
	}
	return sb.String()
}

// indentAll shifts every line of an already-rendered expression one
// level right.
func indentAll(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "\t" + lines[i]
	}
	return strings.Join(lines, "\n")
}
