package fs

import (
	"path/filepath"
)

// PathResolver provides path resolution and document discovery.
type PathResolver interface {
	// CanonicalPath returns the canonical, absolute path by resolving symlinks.
	CanonicalPath(path string) (string, error)
	// Abs returns the absolute path.
	Abs(path string) (string, error)
	// FindDocuments returns the configuration documents named by paths.
	FindDocuments(paths, extensions []string) ([]string, error)
}

// StandardPathResolver is the default implementation using standard library functions.
type StandardPathResolver struct{}

// NewPathResolver creates a new StandardPathResolver.
func NewPathResolver() *StandardPathResolver {
	return &StandardPathResolver{}
}

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
func (r *StandardPathResolver) CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// Abs returns the absolute path.
func (r *StandardPathResolver) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// FindDocuments delegates to the package-level FindDocuments.
func (r *StandardPathResolver) FindDocuments(paths, extensions []string) ([]string, error) {
	return FindDocuments(paths, extensions)
}

// defaultResolver is used by the package-level path functions.
var defaultResolver = NewPathResolver()

// CanonicalPath returns the canonical, absolute path using the default resolver.
func CanonicalPath(path string) (string, error) {
	return defaultResolver.CanonicalPath(path)
}

// Abs returns the absolute path using the default resolver.
func Abs(path string) (string, error) {
	return defaultResolver.Abs(path)
}
