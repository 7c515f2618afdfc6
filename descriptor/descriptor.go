// Package descriptor carries precomputed render metadata for types that
// opt in to it, either by hand or through the ahead-of-time generator.
// A Descriptor pins the property order and labels of a type, so its
// fixtures do not depend on reflection's member enumeration, and
// declares per-property redaction.
//
// The dispatcher prefers a registered Descriptor over both the renderer
// registry and the generic reflection fallback.
package descriptor

import (
	"crypto/sha256"
	"encoding/hex"
	"reflect"

	"fixture-generator/registry"
)

//go:generate go tool stringer -type=RedactionMode -output=redaction_string.go

// RedactionMode selects what replaces a property's real value in the
// generated output.
type RedactionMode int

const (
	RedactNone RedactionMode = iota
	RedactMask               // substitute a fixed placeholder text
	RedactHash               // substitute a digest of the real value
)

// Property describes one stored member of a described type, in render
// order.
type Property struct {
	// Name is the Go field name used to read the value.
	Name string
	// Label is the display name used in breadcrumbs and diagnostics.
	// Empty means use Name. The emitted literal always keys by Name,
	// since anything else would not compile.
	Label string
	// Redaction selects placeholder substitution for the property.
	Redaction RedactionMode
	// Mask is the placeholder text for RedactMask.
	Mask string
	// Ignored excludes the property from the output entirely.
	Ignored bool
}

// EffectiveLabel returns the literal key for the property.
func (p Property) EffectiveLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// Context is the recursion hook handed to a RenderFn. It is implemented
// by the dispatcher's render context.
type Context interface {
	// Field renders a labeled member value, extending the breadcrumb
	// path with the label for error attribution.
	Field(label string, v any) (string, error)
	// Fail constructs a structured failure carrying the current
	// breadcrumb path.
	Fail(reason string) error
}

// RenderFn renders a whole instance directly. v holds the instance.
type RenderFn func(v reflect.Value, ctx Context) (string, error)

// Descriptor is the metadata supplied for one type.
type Descriptor struct {
	// TypeName is the qualified literal name, e.g. "store.Order".
	TypeName string
	// Properties lists the stored members in render order.
	Properties []Property
	// Render optionally renders the instance directly. When nil the
	// dispatcher drives the generic property renderer instead.
	Render RenderFn
}

// defaultRegistry holds process-wide descriptors, installed by
// generated init functions or by hand.
var defaultRegistry = registry.New[Descriptor]()

// Register installs d for type t. Last registration wins.
func Register(t reflect.Type, d Descriptor) error {
	return defaultRegistry.Register(t, d)
}

// Lookup returns the descriptor registered for t, if any.
func Lookup(t reflect.Type) (Descriptor, bool) {
	return defaultRegistry.Lookup(t)
}

// Registry exposes the process-wide descriptor registry, mainly so
// render calls can snapshot it and tests can reset it.
func Registry() *registry.Registry[Descriptor] {
	return defaultRegistry
}

// Hash returns the placeholder text emitted for RedactHash properties:
// a truncated sha256 of the real value's text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "sha256:" + hex.EncodeToString(sum[:8])
}
