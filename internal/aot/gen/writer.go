package gen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes each generated file into its package directory,
// creating directories as needed. Regenerating over a previous output
// is the normal workflow, so existing files are replaced.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return errors.Wrapf(err, "aot: create %s", file.Dir)
		}
		path := filepath.Join(file.Dir, GeneratedFileName)
		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "aot: write %s", path)
		}
	}
	return nil
}
