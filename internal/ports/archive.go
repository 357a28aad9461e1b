package ports

import (
	"context"

	"pcsm/internal/domain"
)

// ArchiveStore creates, inspects, lists, and restores backup archives.
type ArchiveStore interface {
	// Backup packages the resolved paths for one game into a timestamped
	// archive. Paths that become unreadable mid-copy are dropped from the
	// manifest and reported; the archive is still finalized with the
	// successes. Source paths are never mutated.
	Backup(ctx context.Context, game string, paths []domain.ResolvedPath) (*domain.BackupReport, error)

	// Inspect reads the manifest of an archive without touching the
	// filesystem targets.
	Inspect(archivePath string) (*domain.Manifest, error)

	// Restore writes every manifest entry back to its original location.
	// Without overwrite it stops before the first write if any destination
	// file already exists and returns the aggregate conflict list; with
	// overwrite it replaces existing files. Per-entry write failures are
	// reported and do not abort the remaining entries.
	Restore(ctx context.Context, archivePath string, overwrite bool) (*domain.RestoreReport, error)

	// List returns the archives recorded for a game, oldest first.
	List(game string) ([]domain.Archive, error)

	// Games returns every game that has at least one archive.
	Games() ([]string, error)
}
