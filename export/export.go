// Package export wraps rendered expressions into complete fixture
// source files and writes them under the resolved output root.
package export

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"fixture-generator/config"
	"fixture-generator/layout"
	"fixture-generator/render"
)

// EnvRoot is the environment variable consulted when no explicit
// directory and no configured root are set.
const EnvRoot = "FIXTURE_ROOT"

// DefaultDir is the conventional fallback output directory.
var DefaultDir = filepath.Join("testdata", "fixtures")

// ErrOverwrite is the sentinel under every OverwriteError.
var ErrOverwrite = errors.New("export: fixture file already exists")

// OverwriteError reports a write refused because the target exists and
// overwriting was not allowed.
type OverwriteError struct {
	Path string
}

func (e *OverwriteError) Error() string {
	return "export: fixture file already exists: " + e.Path
}

func (e *OverwriteError) Unwrap() error { return ErrOverwrite }

type request struct {
	header    string
	headerSet bool
	doc       string
	dir       string
	imports   []string
	overwrite bool
	logger    *zap.Logger
}

// Option adjusts one export call.
type Option func(*request)

// WithHeader overrides the global header for this call. An empty text
// suppresses the header entirely.
func WithHeader(text string) Option {
	return func(r *request) { r.header = text; r.headerSet = true }
}

// WithDoc attaches a doc comment block to the declaration.
func WithDoc(text string) Option {
	return func(r *request) { r.doc = text }
}

// WithDir writes under an explicit directory, bypassing the resolution
// chain.
func WithDir(dir string) Option {
	return func(r *request) { r.dir = dir }
}

// WithImports adds import paths the expression needs beyond the
// recognized builtins, typically the domain package of the value.
func WithImports(paths ...string) Option {
	return func(r *request) { r.imports = append(r.imports, paths...) }
}

// AllowOverwrite permits replacing an existing fixture file.
func AllowOverwrite() Option {
	return func(r *request) { r.overwrite = true }
}

// WithLogger routes write reporting to a logger. Default is no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(r *request) { r.logger = logger }
}

// Declaration renders v and wraps it into a formatted
// "var <name> = <expr>" declaration.
func Declaration(name string, v any) (string, error) {
	snap := config.Current()

	expr, err := render.ExpressionWith(v, snap.Render)
	if err != nil {
		return "", err
	}
	return layout.Format("var "+name+" = "+expr, snap.Profile)
}

// File renders v into a complete fixture source file for package pkg.
func File(pkg, name string, v any, opts ...Option) (string, error) {
	r := apply(opts)
	snap := config.Current()

	expr, err := render.ExpressionWith(v, snap.Render)
	if err != nil {
		return "", err
	}
	decl, err := layout.Format("var "+name+" = "+expr, snap.Profile)
	if err != nil {
		return "", err
	}

	header := snap.Header
	if r.headerSet {
		header = r.header
	}

	term := "\n"
	if snap.Profile.LineEnding == layout.EndingCRLF {
		term = "\r\n"
	}
	var sb strings.Builder
	if header != "" {
		sb.WriteString(normalizeEndings(header, term))
		sb.WriteString(term)
		sb.WriteString(term)
	}
	sb.WriteString("package " + pkg + term)

	if imports := collectImports(expr, r.imports); len(imports) > 0 {
		sb.WriteString(term)
		sb.WriteString("import (" + term)
		for _, path := range imports {
			sb.WriteString("\t" + quote(path) + term)
		}
		sb.WriteString(")" + term)
	}

	sb.WriteString(term)
	if r.doc != "" {
		for _, line := range strings.Split(strings.TrimRight(r.doc, "\n"), "\n") {
			sb.WriteString(strings.TrimRight("// "+line, " ") + term)
		}
	}
	sb.WriteString(decl)
	return sb.String(), nil
}

// Write renders v and writes the fixture file for package pkg into the
// resolved directory. It returns the written path.
func Write(pkg, name string, v any, opts ...Option) (string, error) {
	r := apply(opts)

	content, err := File(pkg, name, v, opts...)
	if err != nil {
		return "", err
	}

	dir := resolveDir(r.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "export: create %s", dir)
	}

	path := filepath.Join(dir, fileName(name))
	if _, err := os.Stat(path); err == nil && !r.overwrite {
		return "", &OverwriteError{Path: path}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.Wrapf(err, "export: write %s", path)
	}

	r.logger.Info("fixture written",
		zap.String("path", path),
		zap.String("fixture", name),
		zap.Int("bytes", len(content)),
		zap.Bool("overwrite", r.overwrite),
	)
	return path, nil
}

func apply(opts []Option) request {
	r := request{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// resolveDir picks the output directory: explicit > configured root >
// environment > convention.
func resolveDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if root := config.RootPath(); root != "" {
		return root
	}
	if root := os.Getenv(EnvRoot); root != "" {
		return root
	}
	return DefaultDir
}

// fileName maps a fixture name to its file: SampleOrder becomes
// sample_order_fixture.go.
func fileName(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String() + "_fixture.go"
}

// builtinImports maps expression text markers to the import the emitted
// call needs.
var builtinImports = []struct {
	marker string
	path   string
}{
	{"fixture.", "fixture-generator/fixture"},
	{"math.", "math"},
	{"time.", "time"},
	{"uuid.", "github.com/google/uuid"},
}

func collectImports(expr string, extra []string) []string {
	// markers inside string values must not drag in unused imports
	masked := layout.MaskStrings(expr)

	set := map[string]struct{}{}
	for _, bi := range builtinImports {
		if strings.Contains(masked, bi.marker) {
			set[bi.path] = struct{}{}
		}
	}
	for _, path := range extra {
		if path != "" {
			set[path] = struct{}{}
		}
	}

	imports := make([]string, 0, len(set))
	for path := range set {
		imports = append(imports, path)
	}
	sort.Strings(imports)
	return imports
}

func quote(s string) string {
	return `"` + s + `"`
}

// normalizeEndings rewrites header text to the active terminator and
// strips trailing blank lines.
func normalizeEndings(s, term string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimRight(s, "\n")
	if term != "\n" {
		s = strings.ReplaceAll(s, "\n", term)
	}
	return s
}
