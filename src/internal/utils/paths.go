package utils

import "path/filepath"

// ResolvePath returns path unchanged if it is empty or absolute, otherwise
// joins it with baseDir. An empty baseDir leaves the path relative to the
// working directory.
func ResolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
