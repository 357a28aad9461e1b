package commands

import (
	"context"
	"fmt"

	"pcsm/internal/application"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// ListArchivesResult contains the archives found for a game
type ListArchivesResult struct {
	Game     string
	Archives []domain.Archive
}

// ListArchivesCommand lists a game's backups, oldest first
type ListArchivesCommand struct {
	store ports.ArchiveStore
	Game  string
}

// NewListArchivesCommand creates a new ListArchivesCommand
func NewListArchivesCommand(store ports.ArchiveStore, game string) *ListArchivesCommand {
	return &ListArchivesCommand{store: store, Game: game}
}

// Validate checks if the list operation is valid
func (c *ListArchivesCommand) Validate() error {
	if c.Game == "" {
		return &application.ValidationError{
			Field:   "game",
			Message: "game name is required",
		}
	}
	return nil
}

// Execute runs the list archives command
func (c *ListArchivesCommand) Execute(ctx context.Context) (*ListArchivesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	archives, err := c.store.List(c.Game)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	return &ListArchivesResult{Game: c.Game, Archives: archives}, nil
}

// ListGamesResult contains the games that have at least one backup
type ListGamesResult struct {
	Games []string
}

// ListGamesCommand lists the games present in the backup directory
type ListGamesCommand struct {
	store ports.ArchiveStore
}

// NewListGamesCommand creates a new ListGamesCommand
func NewListGamesCommand(store ports.ArchiveStore) *ListGamesCommand {
	return &ListGamesCommand{store: store}
}

// Execute runs the list games command
func (c *ListGamesCommand) Execute(ctx context.Context) (*ListGamesResult, error) {
	games, err := c.store.Games()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return &ListGamesResult{Games: games}, nil
}
