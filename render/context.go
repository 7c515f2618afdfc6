// Package render turns runtime values into deterministic Go expression
// text that reconstructs an equivalent value.
//
// Resolution order per node: nil and invalid values short-circuit,
// interfaces unwrap to their dynamic value, then a registered type
// descriptor wins, then a registered renderer function, then the
// kind-driven handlers (scalars, pointers, sequences, maps, structs).
// Channels, functions and unsafe pointers have no rendering and fail
// with a structured error carrying the breadcrumb path.
//
// Identical input always yields byte-identical text. The emitted text is
// canonical (tabs, LF); layout.Format normalizes it to the active
// profile before it reaches a file.
package render

import (
	"reflect"

	"fixture-generator/config"
	"fixture-generator/descriptor"
	"fixture-generator/options"
	"fixture-generator/registry"
)

// Func renders one value of a registered type. Implementations recurse
// through ctx so breadcrumbs and guards stay intact.
type Func func(rv reflect.Value, ctx Context) (string, error)

// DefaultRegistry holds the process-wide renderer functions. The
// builtins install themselves here; applications add their own entries
// with Register.
var DefaultRegistry = registry.New[Func]()

// Register installs fn as the renderer for type t in the default
// registry. Last registration wins, so applications can override a
// builtin.
func Register(t reflect.Type, fn Func) error {
	return DefaultRegistry.Register(t, fn)
}

// visitKey identifies one reference currently on the descent stack.
// The type disambiguates distinct references sharing an address, such
// as a struct pointer and a pointer to its first field.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
}

// Context carries the per-call state of one render traversal. It is
// passed by value; descending copies it with an extended breadcrumb, so
// sibling branches never see each other's path. The identity guard is
// shared across copies on purpose: it tracks the single descent stack.
type Context struct {
	path    Path
	opts    options.RenderOptions
	funcs   *registry.Registry[Func]
	descs   *registry.Registry[descriptor.Descriptor]
	visited map[visitKey]struct{}
}

// NewContext returns a root context over the default registries.
func NewContext(opts options.RenderOptions) Context {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = options.DefaultMaxDepth
	}
	return Context{
		opts:    opts,
		funcs:   DefaultRegistry,
		descs:   descriptor.Registry(),
		visited: make(map[visitKey]struct{}),
	}
}

// Expression renders v under the current global configuration.
func Expression(v any) (string, error) {
	return ExpressionWith(v, config.RenderOptions())
}

// ExpressionWith renders v under explicit options.
func ExpressionWith(v any, opts options.RenderOptions) (string, error) {
	return NewContext(opts).Render(v)
}

// Render renders v at the context's current position.
func (c Context) Render(v any) (string, error) {
	if v == nil {
		return "nil", nil
	}
	return c.expr(reflect.ValueOf(v))
}

// Options returns the option snapshot of this traversal.
func (c Context) Options() options.RenderOptions {
	return c.opts
}

// Path returns a copy of the current breadcrumb path.
func (c Context) Path() Path {
	return append(Path(nil), c.path...)
}

// Field renders a labeled member, extending the breadcrumb with the
// label. Custom renderers and descriptors recurse through it.
func (c Context) Field(label string, v any) (string, error) {
	return c.descend(FieldSegment(label)).Render(v)
}

// Index renders a sequence element, extending the breadcrumb with the
// position.
func (c Context) Index(i int, v any) (string, error) {
	return c.descend(IndexSegment(i)).Render(v)
}

// Key renders a map value, extending the breadcrumb with the rendered
// key text.
func (c Context) Key(renderedKey string, v any) (string, error) {
	return c.descend(KeySegment(renderedKey)).Render(v)
}

// Fail constructs a structured failure attributed to the current path.
func (c Context) Fail(reason string) error {
	return &ReflectionError{Reason: reason, Path: c.Path()}
}

func (c Context) descend(s Segment) Context {
	c.path = c.path.child(s)
	return c
}

// enter pushes rv's identity onto the descent guard. The release
// callback pops it; callers defer it only on success.
func (c Context) enter(rv reflect.Value) (release func(), err error) {
	key := visitKey{ptr: rv.Pointer(), typ: rv.Type()}
	if key.ptr == 0 {
		return func() {}, nil
	}
	if _, seen := c.visited[key]; seen {
		return nil, &CycleError{TypeName: rv.Type().String(), Path: c.Path()}
	}
	c.visited[key] = struct{}{}
	return func() { delete(c.visited, key) }, nil
}
