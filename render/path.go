package render

import (
	"strconv"
	"strings"
)

// SegmentKind tags one breadcrumb segment.
type SegmentKind int

const (
	SegmentField SegmentKind = iota // labeled member
	SegmentIndex                    // sequence position
	SegmentKey                      // map value, keyed by rendered key text
)

// Segment is one step of a breadcrumb path.
type Segment struct {
	Kind  SegmentKind
	Field string
	Index int
	Key   string
}

// FieldSegment returns a labeled-member segment.
func FieldSegment(name string) Segment {
	return Segment{Kind: SegmentField, Field: name}
}

// IndexSegment returns a sequence-position segment.
func IndexSegment(i int) Segment {
	return Segment{Kind: SegmentIndex, Index: i}
}

// KeySegment returns a map-value segment carrying the rendered key text.
func KeySegment(renderedKey string) Segment {
	return Segment{Kind: SegmentKey, Key: renderedKey}
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case SegmentKey:
		return "[" + s.Key + "]"
	default:
		return s.Field
	}
}

// Path is the ordered breadcrumb from the render root to the current
// node. Its length equals the recursion depth.
type Path []Segment

// String renders the path in field/index/key notation, e.g.
// "address.zipCode" or "items[2].sku".
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if s.Kind == SegmentField && i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// child returns a copy of p extended by one segment. The copy never
// shares backing storage with sibling branches.
func (p Path) child(s Segment) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = s
	return next
}
