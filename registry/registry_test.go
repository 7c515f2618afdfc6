package registry_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/registry"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.New[string]()

	require.NoError(t, reg.Register(reflect.TypeOf(T1{}), "one"))

	got, ok := reg.Lookup(reflect.TypeOf(T1{}))
	require.True(t, ok)
	assert.Equal(t, "one", got)

	_, ok = reg.Lookup(reflect.TypeOf(T2{}))
	assert.False(t, ok)

	assert.Equal(t, 1, reg.Count())
}

func TestRegisterLastWriteWins(t *testing.T) {
	reg := registry.New[string]()

	require.NoError(t, reg.Register(reflect.TypeOf(T1{}), "first"))
	require.NoError(t, reg.Register(reflect.TypeOf(T1{}), "second"))

	got, ok := reg.Lookup(reflect.TypeOf(T1{}))
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, reg.Count())

	// re-registering the original restores prior behavior
	require.NoError(t, reg.Register(reflect.TypeOf(T1{}), "first"))
	got, _ = reg.Lookup(reflect.TypeOf(T1{}))
	assert.Equal(t, "first", got)
}

func TestNilType(t *testing.T) {
	reg := registry.New[string]()

	assert.ErrorIs(t, reg.Register(nil, "x"), registry.ErrNilType)

	_, ok := reg.Lookup(nil)
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	reg := registry.New[int]()

	require.NoError(t, reg.Register(reflect.TypeOf(T1{}), 1))
	require.NoError(t, reg.Register(reflect.TypeOf(T2{}), 2))
	assert.Equal(t, 2, reg.Count())
	assert.Len(t, reg.Entries(), 2)

	reg.Reset()
	assert.Equal(t, 0, reg.Count())
	_, ok := reg.Lookup(reflect.TypeOf(T1{}))
	assert.False(t, ok)
}

func TestResetDuringConcurrentLookups(t *testing.T) {
	reg := registry.New[string]()
	key := reflect.TypeOf(T1{})
	require.NoError(t, reg.Register(key, "x"))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			reg.Lookup(key)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			reg.Reset()
			_ = reg.Register(key, "x")
		}
	}()
	wg.Wait()

	require.NoError(t, reg.Register(key, "y"))
	got, ok := reg.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, "y", got)
}
