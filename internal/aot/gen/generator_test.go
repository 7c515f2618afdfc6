package gen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/descriptor"
	"fixture-generator/internal/aot/analyze"
	"fixture-generator/internal/aot/gen"
	"fixture-generator/internal/aot/manifest"
)

func warehouseModel() analyze.Package {
	return analyze.Package{
		Path: "fixture-generator/warehouse",
		Name: "warehouse",
		Types: []analyze.Type{
			{
				Name:          "Customer",
				QualifiedName: "warehouse.Customer",
				Tagged:        true,
				Properties: []descriptor.Property{
					{Name: "ID"},
					{Name: "FirstName"},
					{Name: "LastName"},
					{Name: "Email", Redaction: descriptor.RedactHash},
					{Name: "Phone", Redaction: descriptor.RedactMask, Mask: "***-***-****"},
					{Name: "PasswordHash", Ignored: true},
					{Name: "DateOfBirth"},
					{Name: "CreatedAt"},
				},
			},
			{
				Name:          "Product",
				QualifiedName: "warehouse.Product",
				Tagged:        true,
				Properties: []descriptor.Property{
					{Name: "ID"},
					{Name: "SKU", Label: "Sku"},
					{Name: "Name"},
					{Name: "Description"},
					{Name: "PriceCents"},
					{Name: "Stock"},
					{Name: "IsActive"},
					{Name: "WeightGrams"},
				},
			},
			{
				Name:          "Shipment",
				QualifiedName: "warehouse.Shipment",
				Tagged:        true,
				Properties: []descriptor.Property{
					{Name: "ID"},
					{Name: "OrderNumber"},
					{Name: "Carrier"},
					{Name: "TrackingKey", Redaction: descriptor.RedactHash},
					{Name: "ShippedAt"},
				},
			},
		},
	}
}

// The committed warehouse registration file is this generator's own
// output; regeneration must reproduce it byte for byte.
func TestGenerateMatchesCommittedOutput(t *testing.T) {
	file, ok, err := gen.Generate(warehouseModel(), nil)
	require.NoError(t, err)
	require.True(t, ok)

	want, err := os.ReadFile(filepath.Join("..", "..", "..", "warehouse", gen.GeneratedFileName))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(file.Content))
}

func TestGenerateSkipsUntaggedByDefault(t *testing.T) {
	pkg := analyze.Package{
		Path: "fixture-generator/store",
		Name: "store",
		Types: []analyze.Type{{
			Name:          "Address",
			QualifiedName: "store.Address",
			Properties:    []descriptor.Property{{Name: "Street"}},
		}},
	}

	_, ok, err := gen.Generate(pkg, nil)
	require.NoError(t, err)
	assert.False(t, ok, "untagged types need include_untagged or an override")

	mf := &manifest.File{IncludeUntagged: true}
	file, ok, err := gen.Generate(pkg, mf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(file.Content), `TypeName: "store.Address"`)
}

func TestGenerateAppliesManifestOverrides(t *testing.T) {
	pkg := warehouseModel()
	mf := &manifest.File{
		Types: map[string]manifest.TypeOverride{
			"warehouse.Product":  {Skip: true},
			"warehouse.Shipment": {Properties: map[string]manifest.PropertyOverride{"Carrier": {Ignore: true}}},
		},
	}

	file, ok, err := gen.Generate(pkg, mf)
	require.NoError(t, err)
	require.True(t, ok)

	content := string(file.Content)
	assert.NotContains(t, content, "warehouse.Product")
	assert.Contains(t, content, `{Name: "Carrier", Ignored: true}`)
}

func TestGenerateOrdersTypesByName(t *testing.T) {
	file, ok, err := gen.Generate(warehouseModel(), nil)
	require.NoError(t, err)
	require.True(t, ok)

	content := string(file.Content)
	assert.Less(t, strings.Index(content, "Customer{}"), strings.Index(content, "Product{}"))
	assert.Less(t, strings.Index(content, "Product{}"), strings.Index(content, "Shipment{}"))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	file, ok, err := gen.Generate(warehouseModel(), nil)
	require.NoError(t, err)
	require.True(t, ok)
	file.Dir = filepath.Join(dir, "warehouse")

	require.NoError(t, gen.WriteFiles([]gen.GeneratedFile{file}))

	written, err := os.ReadFile(filepath.Join(file.Dir, gen.GeneratedFileName))
	require.NoError(t, err)
	assert.Equal(t, file.Content, written)
}
