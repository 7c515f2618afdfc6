// Command fixture-generator scans Go packages for fixture-tagged struct
// types and writes per-package descriptor registration files. The
// registrations install at init, so fixtures of those types pin their
// property order, labels and redaction without runtime reflection over
// tags.
//
// Usage:
//
//	fixture-generator [-manifest fixtures.yaml] [patterns...]
//
// Patterns default to the manifest's packages list, or "./...".
package main

import (
	"flag"
	"fmt"
	"os"

	"fixture-generator/internal/aot/analyze"
	"fixture-generator/internal/aot/gen"
	"fixture-generator/internal/aot/manifest"
)

func main() {
	manifestPath := flag.String("manifest", "", "optional YAML manifest steering generation")
	dryRun := flag.Bool("n", false, "report what would be generated without writing")
	flag.Parse()

	if err := run(*manifestPath, *dryRun, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "fixture-generator:", err)
		os.Exit(1)
	}
}

func run(manifestPath string, dryRun bool, patterns []string) error {
	var mf *manifest.File
	if manifestPath != "" {
		loaded, err := manifest.LoadFile(manifestPath)
		if err != nil {
			return err
		}
		mf = loaded
	}

	if len(patterns) == 0 && mf != nil {
		patterns = mf.Packages
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	pkgs, err := analyze.Load(patterns...)
	if err != nil {
		return err
	}

	var files []gen.GeneratedFile
	for _, pkg := range pkgs {
		file, ok, err := gen.Generate(pkg, mf)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		files = append(files, file)
		fmt.Printf("%s: %d bytes\n", pkg.Path, len(file.Content))
	}

	if len(files) == 0 {
		fmt.Println("no fixture-tagged types found")
		return nil
	}
	if dryRun {
		return nil
	}
	return gen.WriteFiles(files)
}
