// Package config holds the process-wide fixture settings: output root,
// global header, layout profile, and render options.
//
// The settings live in an immutable snapshot behind an atomic pointer.
// Readers load the current snapshot without locking; writers take a
// short mutex, derive a new snapshot, and publish it atomically. No
// lock is ever held for the duration of a render call: render entry
// points take one Snapshot and use it throughout the traversal.
package config

import (
	"sync"
	"sync/atomic"

	"fixture-generator/layout"
	"fixture-generator/options"
)

// Snapshot is one immutable view of all settings.
type Snapshot struct {
	// RootPath is the base output directory. Empty means unset; the
	// export layer then falls back to the environment or convention.
	RootPath string
	// Header is the global header text prepended to generated files.
	// Empty means none. A per-call header takes precedence.
	Header string
	// Profile is the active layout profile.
	Profile layout.Profile
	// Render is the active render-option set.
	Render options.RenderOptions
}

// Defaults returns the built-in settings.
func Defaults() Snapshot {
	return Snapshot{
		Profile: layout.DefaultProfile(),
		Render:  options.Default(),
	}
}

// writeMu serializes writers so no partially-derived snapshot is ever
// published.
var writeMu sync.Mutex

var current atomic.Pointer[Snapshot]

func init() {
	s := Defaults()
	current.Store(&s)
}

// Current returns the active snapshot by value.
func Current() Snapshot {
	return *current.Load()
}

// publish derives a new snapshot from the current one under the write
// mutex and swaps it in.
func publish(mutate func(*Snapshot)) {
	writeMu.Lock()
	defer writeMu.Unlock()

	next := *current.Load()
	mutate(&next)
	current.Store(&next)
}

// SetRootPath sets the base output directory. Empty clears it.
func SetRootPath(path string) {
	publish(func(s *Snapshot) { s.RootPath = path })
}

// RootPath returns the base output directory.
func RootPath() string {
	return current.Load().RootPath
}

// SetHeader sets the global header text. Empty clears it.
func SetHeader(text string) {
	publish(func(s *Snapshot) { s.Header = text })
}

// Header returns the global header text.
func Header() string {
	return current.Load().Header
}

// SetProfile sets the active layout profile.
func SetProfile(p layout.Profile) {
	publish(func(s *Snapshot) { s.Profile = p })
}

// Profile returns the active layout profile.
func Profile() layout.Profile {
	return current.Load().Profile
}

// SetRenderOptions sets the active render options.
func SetRenderOptions(o options.RenderOptions) {
	publish(func(s *Snapshot) { s.Render = o })
}

// RenderOptions returns the active render options.
func RenderOptions() options.RenderOptions {
	return current.Load().Render
}

// ResetToDefaults restores the built-in settings. Tests use this to
// isolate runs from each other.
func ResetToDefaults() {
	publish(func(s *Snapshot) { *s = Defaults() })
}
