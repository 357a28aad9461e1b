// Package zipstore implements ports.ArchiveStore over zip archives laid out
// as <root>/<game>/<game>_<timestamp>.zip, each carrying a manifest that maps
// archived content back to its original locations.
package zipstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// Store implements ports.ArchiveStore on a backup root directory.
type Store struct {
	root string
}

// Ensure Store implements ArchiveStore
var _ ports.ArchiveStore = (*Store)(nil)

// New creates the backup root if needed and returns a store over it.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("backup root must not be empty")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create backup root: %w", err)
	}
	return &Store{root: root}, nil
}

// List returns the archives recorded for a game, oldest first. The
// timestamp in the file name sorts lexicographically, so directory order is
// chronological order.
func (s *Store) List(game string) ([]domain.Archive, error) {
	dir := filepath.Join(s.root, domain.SafeName(game))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var archives []domain.Archive
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		_, created, err := domain.ParseArchiveFileName(e.Name())
		if err != nil {
			// Foreign file in the backup dir; not ours to list.
			continue
		}
		archives = append(archives, domain.Archive{
			Game:      game,
			Path:      filepath.Join(dir, e.Name()),
			Name:      e.Name(),
			CreatedAt: created,
		})
	}
	return archives, nil
}

// Games returns every game with at least one backup directory.
func (s *Store) Games() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read backup root: %w", err)
	}

	var games []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		games = append(games, e.Name())
	}
	return games, nil
}
