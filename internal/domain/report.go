package domain

import "fmt"

// PathFailure records one path that could not be processed during a backup
// or restore, with a human-readable reason.
type PathFailure struct {
	Path   string
	Reason string
}

func (f PathFailure) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Reason)
}

// BackupReport describes the outcome of one backup operation. A partial
// backup (some paths failed) still produces an archive; the report is how
// callers tell the difference from full success.
type BackupReport struct {
	Archive Archive
	Entries []ManifestEntry // resolved paths that made it into the archive
	Skipped []PathFailure   // individual files skipped inside a succeeded path
	Failed  []PathFailure   // resolved paths dropped entirely
}

// Partial reports whether anything was left out of the archive.
func (r *BackupReport) Partial() bool {
	return len(r.Failed) > 0 || len(r.Skipped) > 0
}

// RestoreReport describes the outcome of one restore operation.
//
// When Conflicts is non-empty and nothing was restored, the operation
// stopped before writing anything and waits for an overwrite-all
// confirmation.
type RestoreReport struct {
	Game      string
	Restored  []string      // destination files written
	Conflicts []string      // destination files that already existed
	Failed    []PathFailure // entries that could not be written
}

// NeedsConfirmation reports whether the restore stopped on conflicts
// without writing anything.
func (r *RestoreReport) NeedsConfirmation() bool {
	return len(r.Conflicts) > 0 && len(r.Restored) == 0 && len(r.Failed) == 0
}
