// Package registry provides a concurrency-safe, reflect.Type-keyed store
// for renderer functions and type descriptors.
//
// Lookups are lock-free reads against a sync.Map and never block on a
// concurrent Register. Register takes a short write mutex so the entry
// count stays consistent; re-registering a key overwrites the previous
// entry (last write wins). A lookup observes either the pre- or the
// post-state of a concurrent register, never a mix.
package registry

import (
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrNilType is returned when a nil reflect.Type is provided.
var ErrNilType = errors.New("registry: nil reflect.Type provided")

// Entry is a snapshot of one registration.
type Entry[F any] struct {
	Type  reflect.Type
	Value F
}

// Registry maps reflect.Type keys to values of type F.
// The zero value is not usable; construct with New.
type Registry[F any] struct {
	// mu guards write-side consistency and the counter
	mu sync.Mutex
	// m maps reflect.Type to F.
	m sync.Map
	// count tracks the number of registered entries.
	count int
}

// New constructs an empty Registry.
func New[F any]() *Registry[F] {
	return &Registry[F]{}
}

// Register associates t with value. The last registration for a given
// type wins; registering over an existing entry is not an error.
func (r *Registry[F]) Register(t reflect.Type, value F) error {
	if t == nil {
		return ErrNilType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m.Load(t); !exists {
		r.count++
	}
	r.m.Store(t, value)
	return nil
}

// Lookup returns the value registered for t, if any.
// It never blocks on a concurrent Register.
func (r *Registry[F]) Lookup(t reflect.Type) (value F, ok bool) {
	if t == nil {
		return value, false
	}
	v, ok := r.m.Load(t)
	if !ok {
		return value, false
	}
	return v.(F), true
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *Registry[F]) Entries() []Entry[F] {
	entries := make([]Entry[F], 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, Entry[F]{
			Type:  key.(reflect.Type),
			Value: value.(F),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *Registry[F]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries. Entries are deleted in place so
// concurrent lookups stay safe during a reset.
func (r *Registry[F]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
