package ports

import "context"

// Linker redirects a save folder into a cloud-synced directory.
//
// Two implementations exist: a directory-link backend (junction on Windows,
// symlink elsewhere) and a copy-based fallback for setups where links cannot
// be created. Callers pick via link.New.
type Linker interface {
	// Establish moves the save content into an empty target and replaces
	// savePath with a redirect to it. A target that already holds synced
	// data is kept as-is rather than overwritten with the local copy.
	// Calling it again with the same target is a no-op; an existing
	// redirect to a different target is an error, never silently replaced.
	// On failure no source data is lost.
	Establish(ctx context.Context, savePath, target string) error

	// Remove undoes Establish, leaving savePath a plain directory. With
	// copyBack the synced content is copied back into it.
	Remove(ctx context.Context, savePath string, copyBack bool) error

	// Status reports whether savePath currently redirects somewhere, and
	// where.
	Status(savePath string) (target string, linked bool, err error)
}
