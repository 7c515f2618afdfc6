package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/descriptor"
	"fixture-generator/internal/aot/analyze"
)

// Loads the real warehouse package through go/packages. Slowish, but it
// is the contract the CLI depends on.
func TestLoadWarehouse(t *testing.T) {
	if testing.Short() {
		t.Skip("package loading in -short mode")
	}

	pkgs, err := analyze.Load("fixture-generator/warehouse")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, "warehouse", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	byName := map[string]analyze.Type{}
	for _, typ := range pkg.Types {
		byName[typ.Name] = typ
	}

	customer, ok := byName["Customer"]
	require.True(t, ok)
	assert.True(t, customer.Tagged)
	assert.Equal(t, "warehouse.Customer", customer.QualifiedName)

	props := map[string]descriptor.Property{}
	var order []string
	for _, p := range customer.Properties {
		props[p.Name] = p
		order = append(order, p.Name)
	}
	assert.Equal(t, descriptor.RedactHash, props["Email"].Redaction)
	assert.Equal(t, "***-***-****", props["Phone"].Mask)
	assert.True(t, props["PasswordHash"].Ignored)
	assert.Equal(t, []string{"ID", "FirstName", "LastName", "Email", "Phone", "PasswordHash", "DateOfBirth", "CreatedAt"}, order)

	shipment, ok := byName["Shipment"]
	require.True(t, ok)
	assert.Equal(t, descriptor.RedactHash, propByName(shipment, "TrackingKey").Redaction)
}

func propByName(typ analyze.Type, name string) descriptor.Property {
	for _, p := range typ.Properties {
		if p.Name == name {
			return p
		}
	}
	return descriptor.Property{}
}

func TestLoadRejectsBadPattern(t *testing.T) {
	if testing.Short() {
		t.Skip("package loading in -short mode")
	}

	_, err := analyze.Load("fixture-generator/does-not-exist")
	assert.Error(t, err)
}
