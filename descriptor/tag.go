package descriptor

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// TagKey is the struct tag consulted for fixture metadata.
const TagKey = "fixture"

// Tag is the parsed form of a `fixture:"..."` struct tag value.
// Supported directives, comma separated:
//
//	rename=<Label>   report the property under a different label
//	mask=<text>      replace the value with a placeholder text
//	hash             replace the value with a digest of its text
//	ignore (or "-")  omit the property entirely
type Tag struct {
	Rename    string
	Redaction RedactionMode
	Mask      string
	Ignored   bool
}

// ParseTag parses a fixture tag value. The empty string parses to the
// zero Tag.
func ParseTag(s string) (Tag, error) {
	var tag Tag
	if s == "" {
		return tag, nil
	}
	if s == "-" {
		tag.Ignored = true
		return tag, nil
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "ignore":
			tag.Ignored = true
		case part == "hash":
			if tag.Redaction != RedactNone {
				return Tag{}, errors.Newf("descriptor: conflicting redaction directives in tag %q", s)
			}
			tag.Redaction = RedactHash
		case strings.HasPrefix(part, "mask="):
			if tag.Redaction != RedactNone {
				return Tag{}, errors.Newf("descriptor: conflicting redaction directives in tag %q", s)
			}
			tag.Redaction = RedactMask
			tag.Mask = strings.TrimPrefix(part, "mask=")
		case strings.HasPrefix(part, "rename="):
			tag.Rename = strings.TrimPrefix(part, "rename=")
			if tag.Rename == "" {
				return Tag{}, errors.Newf("descriptor: empty rename in tag %q", s)
			}
		case part == "":
			// tolerate trailing comma
		default:
			return Tag{}, errors.Newf("descriptor: unknown directive %q in tag %q", part, s)
		}
	}
	return tag, nil
}

// Apply folds the tag into a property derived from a field name.
func (t Tag) Apply(fieldName string) Property {
	return Property{
		Name:      fieldName,
		Label:     t.Rename,
		Redaction: t.Redaction,
		Mask:      t.Mask,
		Ignored:   t.Ignored,
	}
}
