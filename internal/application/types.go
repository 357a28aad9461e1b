package application

import "pcsm/internal/domain"

// Re-export domain types for use by adapters
type (
	ResolvedPath  = domain.ResolvedPath
	Archive       = domain.Archive
	Manifest      = domain.Manifest
	ManifestEntry = domain.ManifestEntry
	BackupReport  = domain.BackupReport
	RestoreReport = domain.RestoreReport
	PathFailure   = domain.PathFailure
)

// SafeName sanitizes a game identifier for use in file names
func SafeName(game string) string {
	return domain.SafeName(game)
}
