package commands

import (
	"context"
	"fmt"

	"pcsm/internal/application"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// RestoreResult contains the result of restoring a backup
type RestoreResult struct {
	Report  *domain.RestoreReport
	Message string
}

// RestoreCommand extracts an archive back to the locations recorded in its
// manifest. When existing files would be overwritten and Overwrite is false,
// nothing is written and the result lists the conflicts.
type RestoreCommand struct {
	store       ports.ArchiveStore
	ArchivePath string
	Overwrite   bool
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(store ports.ArchiveStore, archivePath string, overwrite bool) *RestoreCommand {
	return &RestoreCommand{
		store:       store,
		ArchivePath: archivePath,
		Overwrite:   overwrite,
	}
}

// Validate checks if the restore operation is valid
func (c *RestoreCommand) Validate() error {
	if c.ArchivePath == "" {
		return &application.ValidationError{
			Field:   "archive",
			Message: "archive path is required",
		}
	}
	return nil
}

// Execute runs the restore command
func (c *RestoreCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.store.Restore(ctx, c.ArchivePath, c.Overwrite)
	if err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	return &RestoreResult{
		Report:  report,
		Message: restoreMessage(report),
	}, nil
}

func restoreMessage(report *domain.RestoreReport) string {
	switch {
	case report.NeedsConfirmation():
		return fmt.Sprintf("%d existing file(s) would be overwritten; nothing was restored", len(report.Conflicts))
	case len(report.Failed) > 0:
		return fmt.Sprintf("Restored %d file(s) for %s; %d failed", len(report.Restored), report.Game, len(report.Failed))
	default:
		return fmt.Sprintf("Restored %d file(s) for %s", len(report.Restored), report.Game)
	}
}

// InspectResult contains the manifest read from an archive
type InspectResult struct {
	Manifest *domain.Manifest
}

// InspectCommand reads the manifest embedded in an archive without
// extracting anything.
type InspectCommand struct {
	store       ports.ArchiveStore
	ArchivePath string
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(store ports.ArchiveStore, archivePath string) *InspectCommand {
	return &InspectCommand{store: store, ArchivePath: archivePath}
}

// Validate checks if the inspect operation is valid
func (c *InspectCommand) Validate() error {
	if c.ArchivePath == "" {
		return &application.ValidationError{
			Field:   "archive",
			Message: "archive path is required",
		}
	}
	return nil
}

// Execute runs the inspect command
func (c *InspectCommand) Execute(ctx context.Context) (*InspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, err := c.store.Inspect(c.ArchivePath)
	if err != nil {
		return nil, err
	}
	return &InspectResult{Manifest: m}, nil
}
