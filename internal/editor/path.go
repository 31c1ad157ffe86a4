package editor

import "path/filepath"

// absPath resolves path to an absolute, cleaned form.
func absPath(path string) (string, error) {
	return filepath.Abs(path)
}
