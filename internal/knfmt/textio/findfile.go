package textio

import (
	"os"
	"path/filepath"
)

// FindUpwards looks for a file named name starting at dir and walking
// up through parent directories until one is found or the root is
// reached. Used by the CLI front end to locate a `.clang-format` style
// configuration the way editors and clang-format itself do.
func FindUpwards(dir, name string) (path string, info os.FileInfo, err error) {
	for d := dir; len(d) > 0; {
		candidate := filepath.Join(d, name)
		if fi, statErr := os.Stat(candidate); statErr == nil {
			abs, absErr := filepath.Abs(candidate)
			return abs, fi, absErr
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", nil, os.ErrNotExist
}
