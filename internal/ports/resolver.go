package ports

import "pcsm/internal/domain"

// PathResolver turns raw location hints into concrete paths that exist on
// the current machine. Hints that resolve to nothing are dropped, not
// reported: absence of a save at one candidate location is expected.
type PathResolver interface {
	// Resolve expands every hint against the machine's root table and
	// returns the existing paths, deduplicated, in hint order. The game
	// name drives best-effort subfolder matching for probing hints.
	Resolve(game string, hints []string) []domain.ResolvedPath
}
