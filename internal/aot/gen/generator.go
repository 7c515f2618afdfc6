// Package gen turns the extracted fixture model into registration
// source files: one fixtures_generated.go per package, installing a
// descriptor.Descriptor for each selected type at init.
package gen

import (
	"bytes"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"fixture-generator/descriptor"
	"fixture-generator/internal/aot/analyze"
	"fixture-generator/internal/aot/manifest"
)

// GeneratedFileName is the fixed name of the per-package output file.
const GeneratedFileName = "fixtures_generated.go"

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the scanned package's
	// own directory, so the registrations ride along with the types).
	Dir string
	// Content is the gofmt-formatted source.
	Content []byte
}

var fileTemplate = template.Must(template.New("fixtures").Parse(
	`// Code generated by fixture-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"reflect"

	"fixture-generator/descriptor"
)

func init() {
{{- range .Types}}
	register(reflect.TypeOf({{.Name}}{}), descriptor.Descriptor{
		TypeName: {{.QuotedName}},
		Properties: []descriptor.Property{
{{- range .Properties}}
			{{.}},
{{- end}}
		},
	})
{{- end}}
}

func register(t reflect.Type, d descriptor.Descriptor) {
	if err := descriptor.Register(t, d); err != nil {
		panic(err)
	}
}
`))

type templateData struct {
	PackageName string
	Types       []typeData
}

type typeData struct {
	Name       string
	QuotedName string
	Properties []string
}

// Generate renders the registration file for one package. It returns
// ok=false when no type qualifies under the manifest policy.
func Generate(pkg analyze.Package, mf *manifest.File) (GeneratedFile, bool, error) {
	data := templateData{PackageName: pkg.Name}

	for _, typ := range selectTypes(pkg, mf) {
		td := typeData{
			Name:       typ.Name,
			QuotedName: strconv.Quote(typ.QualifiedName),
		}
		for _, p := range typ.Properties {
			td.Properties = append(td.Properties, propertyLiteral(p))
		}
		data.Types = append(data.Types, td)
	}
	if len(data.Types) == 0 {
		return GeneratedFile{}, false, nil
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, false, errors.Wrapf(err, "aot: render %s", pkg.Path)
	}
	content, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{}, false, errors.Wrapf(err, "aot: format output for %s", pkg.Path)
	}
	return GeneratedFile{Dir: pkg.Dir, Content: content}, true, nil
}

// selectTypes applies the manifest policy and overrides, keeping the
// output order stable by type name.
func selectTypes(pkg analyze.Package, mf *manifest.File) []analyze.Type {
	includeUntagged := mf != nil && mf.IncludeUntagged

	out := make([]analyze.Type, 0, len(pkg.Types))
	for _, typ := range pkg.Types {
		override, hasOverride := typeOverride(mf, typ.QualifiedName)
		if hasOverride && override.Skip {
			continue
		}
		if !typ.Tagged && !includeUntagged && !hasOverride {
			continue
		}

		if hasOverride {
			props := make([]descriptor.Property, len(typ.Properties))
			for i, p := range typ.Properties {
				if po, ok := override.Properties[p.Name]; ok {
					p = po.Apply(p)
				}
				props[i] = p
			}
			typ.Properties = props
		}
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func typeOverride(mf *manifest.File, qualified string) (manifest.TypeOverride, bool) {
	if mf == nil {
		return manifest.TypeOverride{}, false
	}
	o, ok := mf.Types[qualified]
	return o, ok
}

// propertyLiteral renders one descriptor.Property literal, omitting
// zero fields.
func propertyLiteral(p descriptor.Property) string {
	parts := []string{"Name: " + strconv.Quote(p.Name)}
	if p.Label != "" {
		parts = append(parts, "Label: "+strconv.Quote(p.Label))
	}
	switch p.Redaction {
	case descriptor.RedactMask:
		parts = append(parts, "Redaction: descriptor.RedactMask", "Mask: "+strconv.Quote(p.Mask))
	case descriptor.RedactHash:
		parts = append(parts, "Redaction: descriptor.RedactHash")
	}
	if p.Ignored {
		parts = append(parts, "Ignored: true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
