// Package repo asks git which configuration documents have changed, so a
// validation run can be limited to the documents touched since a revision.
package repo

import "context"

// Revision represents a specific git point-in-time (branch, tag or hash).
type Revision string

func (r Revision) String() string { return string(r) }

// Change represents a file status detected in the repository.
type Change struct {
	Path  string // absolute
	IsNew bool   // True if the file is added or untracked, false if modified
}

// Gitter defines the interface for git repository operations.
type Gitter interface {
	// Changes lists files under path that were added or modified between since
	// and the working tree, together with untracked files. Deleted files are left out.
	Changes(ctx context.Context, since Revision, path string) ([]Change, error)
}
