package catalog

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Directories yields the absolute path of root followed by every
// descendant directory in top-down pre-order. Entries that cannot be
// read are skipped. Symbolic links to directories are not followed, so
// link cycles cannot occur.
func Directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			abs = root
		}
		filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Access error, skip the entry.
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
