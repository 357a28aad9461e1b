package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoPaths         = errors.New("no resolved save paths")
	ErrManifestMissing = errors.New("archive has no manifest")
	ErrManifestCorrupt = errors.New("archive manifest is unreadable")
	ErrPermission      = errors.New("insufficient privileges")
	ErrLinkWrongTarget = errors.New("link points at a different target")
	ErrNotLinked       = errors.New("path is not a sync link")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ManifestError wraps a manifest read failure for one archive
type ManifestError struct {
	Archive string
	Reason  string
	missing bool
}

// NewManifestMissing reports an archive without the metadata entry.
func NewManifestMissing(archive string) *ManifestError {
	return &ManifestError{Archive: archive, Reason: "metadata entry not found", missing: true}
}

// NewManifestCorrupt reports an archive whose metadata entry cannot be parsed.
func NewManifestCorrupt(archive string, reason string) *ManifestError {
	return &ManifestError{Archive: archive, Reason: reason}
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("cannot restore %s: %s", e.Archive, e.Reason)
}

func (e *ManifestError) Is(target error) bool {
	if e.missing {
		return target == ErrManifestMissing
	}
	return target == ErrManifestCorrupt
}

// LinkError represents a sync-link operation failure
type LinkError struct {
	Save   string
	Target string
	Reason string
	Cause  error
}

func (e *LinkError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("cannot link %s to %s: %s", e.Save, e.Target, e.Reason)
	}
	return fmt.Sprintf("cannot unlink %s: %s", e.Save, e.Reason)
}

func (e *LinkError) Unwrap() error {
	return e.Cause
}
