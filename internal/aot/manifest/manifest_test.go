package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/descriptor"
	"fixture-generator/internal/aot/manifest"
)

const sample = `
version: "1"
packages:
  - ./warehouse
include_untagged: true
types:
  warehouse.Customer:
    properties:
      Phone:
        redaction: mask
        mask: "###"
      Email:
        redaction: hash
  warehouse.Internal:
    skip: true
`

func TestParse(t *testing.T) {
	f, err := manifest.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./warehouse"}, f.Packages)
	assert.True(t, f.IncludeUntagged)
	assert.True(t, f.Types["warehouse.Internal"].Skip)
	assert.Equal(t, "mask", f.Types["warehouse.Customer"].Properties["Phone"].Redaction)
}

func TestParseDefaultsVersion(t *testing.T) {
	f, err := manifest.Parse([]byte("packages: [./store]"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestParseRejectsUnknownRedaction(t *testing.T) {
	_, err := manifest.Parse([]byte(`
types:
  x.Y:
    properties:
      F: {redaction: rot13}
`))
	assert.Error(t, err)
}

func TestPropertyOverrideApply(t *testing.T) {
	base := descriptor.Property{Name: "Phone"}

	got := manifest.PropertyOverride{Redaction: "mask", Mask: "###"}.Apply(base)
	assert.Equal(t, descriptor.RedactMask, got.Redaction)
	assert.Equal(t, "###", got.Mask)

	got = manifest.PropertyOverride{Rename: "Contact", Ignore: true}.Apply(base)
	assert.Equal(t, "Contact", got.Label)
	assert.True(t, got.Ignored)

	// zero override leaves the tag-derived property untouched
	assert.Equal(t, base, manifest.PropertyOverride{}.Apply(base))
}
