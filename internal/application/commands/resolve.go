package commands

import (
	"context"
	"fmt"

	"pcsm/internal/application"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// ResolveResult contains the result of resolving a game's save locations
type ResolveResult struct {
	Game      string
	Hints     []string
	Paths     []domain.ResolvedPath
	FromCache bool
	Message   string
}

// ResolveCommand finds the on-disk save locations for a game: hints come
// from the cache when available, otherwise from the locator, and are then
// resolved against the local filesystem.
type ResolveCommand struct {
	locator  ports.SaveLocator
	cache    ports.HintCache
	resolver ports.PathResolver
	Game     string
	Refresh  bool
}

// NewResolveCommand creates a new ResolveCommand. The cache may be nil, in
// which case every run queries the locator.
func NewResolveCommand(locator ports.SaveLocator, cache ports.HintCache, resolver ports.PathResolver, game string, refresh bool) *ResolveCommand {
	return &ResolveCommand{
		locator:  locator,
		cache:    cache,
		resolver: resolver,
		Game:     game,
		Refresh:  refresh,
	}
}

// Validate checks if the resolve operation is valid
func (c *ResolveCommand) Validate() error {
	if c.Game == "" {
		return &application.ValidationError{
			Field:   "game",
			Message: "game name is required",
		}
	}
	return nil
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hints, fromCache, err := c.lookupHints(ctx)
	if err != nil {
		return nil, err
	}

	paths := c.resolver.Resolve(c.Game, hints)

	msg := fmt.Sprintf("Found %d save location(s) for %s", len(paths), c.Game)
	if len(paths) == 0 {
		msg = fmt.Sprintf("No existing save locations found for %s", c.Game)
	}

	return &ResolveResult{
		Game:      c.Game,
		Hints:     hints,
		Paths:     paths,
		FromCache: fromCache,
		Message:   msg,
	}, nil
}

func (c *ResolveCommand) lookupHints(ctx context.Context) ([]string, bool, error) {
	if c.cache != nil && !c.Refresh {
		hints, ok, err := c.cache.Hints(c.Game)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read hint cache: %w", err)
		}
		if ok {
			return hints, true, nil
		}
	}

	hints, err := c.locator.FindHints(ctx, c.Game)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up save locations: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.PutHints(c.Game, hints); err != nil {
			return nil, false, fmt.Errorf("failed to update hint cache: %w", err)
		}
	}
	return hints, false, nil
}
