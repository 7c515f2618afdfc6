// Package analyze loads Go packages and extracts the fixture metadata
// model the generator consumes: exported struct types, their exported
// fields in declaration order, and their parsed fixture tags.
package analyze

import (
	"go/types"
	"path/filepath"
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"fixture-generator/descriptor"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Type is one struct type eligible for a generated descriptor.
type Type struct {
	// Name is the local type name.
	Name string
	// QualifiedName is the literal text, e.g. "warehouse.Customer".
	QualifiedName string
	// Properties lists the exported fields in declaration order with
	// their tags already folded in.
	Properties []descriptor.Property
	// Tagged reports whether any field carried a fixture tag.
	Tagged bool
}

// Package is the extracted model of one loaded package.
type Package struct {
	Path  string
	Name  string
	Dir   string
	Types []Type
}

// Load loads the packages matching the patterns and extracts their
// fixture model. Patterns are standard Go package patterns.
func Load(patterns ...string) ([]Package, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "aot: load packages")
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, errors.Newf("aot: package %s: %s", pkg.PkgPath, e.Msg)
		}
	}

	out := make([]Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		model, err := extract(pkg)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, nil
}

func extract(pkg *packages.Package) (Package, error) {
	model := Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		model.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj.IsAlias() {
			continue
		}
		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		typ, err := extractStruct(pkg.Name, name, st)
		if err != nil {
			return Package{}, err
		}
		if len(typ.Properties) > 0 {
			model.Types = append(model.Types, typ)
		}
	}
	return model, nil
}

func extractStruct(pkgName, typeName string, st *types.Struct) (Type, error) {
	typ := Type{
		Name:          typeName,
		QualifiedName: pkgName + "." + typeName,
	}
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		raw := reflect.StructTag(st.Tag(i)).Get(descriptor.TagKey)
		tag, err := descriptor.ParseTag(raw)
		if err != nil {
			return Type{}, errors.Wrapf(err, "aot: %s.%s", typ.QualifiedName, field.Name())
		}
		if raw != "" {
			typ.Tagged = true
		}
		typ.Properties = append(typ.Properties, tag.Apply(field.Name()))
	}
	return typ, nil
}
