package generator

import "os"

// Writer persists artifact bytes at a path. Implementations overwrite existing files.
type Writer interface {
	Write(path string, data []byte) error
}

// FileWriter writes artifacts to the local file system.
type FileWriter struct{}

// Write writes data to path with 0644 permissions, truncating any existing file.
func (FileWriter) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
