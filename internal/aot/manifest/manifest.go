// Package manifest reads the optional YAML file that steers the
// descriptor generator: which packages to scan, whether untagged types
// get descriptors, and per-property overrides on top of struct tags.
package manifest

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"fixture-generator/descriptor"
)

// File is the parsed manifest.
type File struct {
	Version string `yaml:"version"`
	// Packages are Go package patterns to scan, e.g. "./warehouse".
	Packages []string `yaml:"packages"`
	// IncludeUntagged emits descriptors for structs with no fixture
	// tags. Default is tagged types only.
	IncludeUntagged bool `yaml:"include_untagged"`
	// Types holds per-type overrides keyed by qualified name, e.g.
	// "warehouse.Customer".
	Types map[string]TypeOverride `yaml:"types"`
}

// TypeOverride adjusts one type beyond its struct tags.
type TypeOverride struct {
	// Skip excludes the type even when tagged.
	Skip bool `yaml:"skip"`
	// Properties is keyed by Go field name.
	Properties map[string]PropertyOverride `yaml:"properties"`
}

// PropertyOverride adjusts one property. Set fields win over the tag.
type PropertyOverride struct {
	Rename    string `yaml:"rename"`
	Redaction string `yaml:"redaction"` // "mask" or "hash"
	Mask      string `yaml:"mask"`
	Ignore    bool   `yaml:"ignore"`
}

// LoadFile loads and parses a manifest from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "aot: read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "aot: parse manifest")
	}
	if f.Version == "" {
		f.Version = "1"
	}
	for name, t := range f.Types {
		for field, p := range t.Properties {
			switch p.Redaction {
			case "", "mask", "hash":
			default:
				return nil, errors.Newf("aot: manifest %s.%s: unknown redaction %q", name, field, p.Redaction)
			}
		}
	}
	return &f, nil
}

// Apply folds an override into a tag-derived property.
func (o PropertyOverride) Apply(p descriptor.Property) descriptor.Property {
	if o.Rename != "" {
		p.Label = o.Rename
	}
	switch o.Redaction {
	case "mask":
		p.Redaction = descriptor.RedactMask
		p.Mask = o.Mask
	case "hash":
		p.Redaction = descriptor.RedactHash
	}
	if o.Ignore {
		p.Ignored = true
	}
	return p
}
