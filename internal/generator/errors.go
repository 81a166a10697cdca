package generator

import "fmt"

// DirectoryError represents a failure to create a destination directory
type DirectoryError struct {
	Path  string
	Cause error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}

func (e *DirectoryError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure to persist one generated artifact
type WriteError struct {
	Category string
	ID       string
	Path     string
	Cause    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s/%s to %s: %v", e.Category, e.ID, e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
