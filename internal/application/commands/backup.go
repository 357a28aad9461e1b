package commands

import (
	"context"
	"fmt"

	"pcsm/internal/application"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// BackupResult contains the result of creating a backup
type BackupResult struct {
	Report  *domain.BackupReport
	Message string
}

// BackupCommand archives a game's resolved save locations into a zip
type BackupCommand struct {
	store ports.ArchiveStore
	Game  string
	Paths []domain.ResolvedPath
}

// NewBackupCommand creates a new BackupCommand
func NewBackupCommand(store ports.ArchiveStore, game string, paths []domain.ResolvedPath) *BackupCommand {
	return &BackupCommand{
		store: store,
		Game:  game,
		Paths: paths,
	}
}

// Validate checks if the backup operation is valid
func (c *BackupCommand) Validate() error {
	if c.Game == "" {
		return &application.ValidationError{
			Field:   "game",
			Message: "game name is required",
		}
	}
	if len(c.Paths) == 0 {
		return &application.ValidationError{
			Field:   "paths",
			Message: "at least one save location is required",
		}
	}
	return nil
}

// Execute runs the backup command
func (c *BackupCommand) Execute(ctx context.Context) (*BackupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.store.Backup(ctx, c.Game, c.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}

	msg := fmt.Sprintf("Created %s (%d location(s))", report.Archive.Name, len(report.Entries))
	if report.Partial() {
		msg = fmt.Sprintf("Created %s with %d of %d location(s); %d could not be read",
			report.Archive.Name, len(report.Entries), len(c.Paths), len(report.Failed))
	}

	return &BackupResult{
		Report:  report,
		Message: msg,
	}, nil
}
