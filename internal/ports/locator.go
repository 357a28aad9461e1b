package ports

import "context"

// SaveLocator supplies raw save location hints for a game from an external
// knowledge base. It is a pure data source; callers decide what to cache.
type SaveLocator interface {
	// FindHints returns the ordered list of location hints recorded for a
	// game, empty when the game is unknown.
	FindHints(ctx context.Context, game string) ([]string, error)

	// Suggest returns title suggestions for a partial game name.
	Suggest(ctx context.Context, query string) ([]string, error)
}

// HintCache persists hint lists between runs so repeat lookups skip the
// network.
type HintCache interface {
	Hints(game string) ([]string, bool, error)
	PutHints(game string, hints []string) error

	Setting(key string) (string, error)
	PutSetting(key, value string) error

	Close() error
}
