package commands

import (
	"context"
	"errors"
	"strings"

	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// fakeLocator serves canned hints and counts lookups.
type fakeLocator struct {
	hints map[string][]string
	err   error
	calls int
}

var _ ports.SaveLocator = (*fakeLocator)(nil)

func (f *fakeLocator) FindHints(ctx context.Context, game string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hints[game], nil
}

func (f *fakeLocator) Suggest(ctx context.Context, query string) ([]string, error) {
	var out []string
	for g := range f.hints {
		if strings.Contains(strings.ToLower(g), strings.ToLower(query)) {
			out = append(out, g)
		}
	}
	return out, nil
}

// fakeCache is an in-memory HintCache.
type fakeCache struct {
	hints    map[string][]string
	settings map[string]string
}

var _ ports.HintCache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{
		hints:    make(map[string][]string),
		settings: make(map[string]string),
	}
}

func (f *fakeCache) Hints(game string) ([]string, bool, error) {
	h, ok := f.hints[game]
	return h, ok, nil
}

func (f *fakeCache) PutHints(game string, hints []string) error {
	f.hints[game] = hints
	return nil
}

func (f *fakeCache) Setting(key string) (string, error) { return f.settings[key], nil }

func (f *fakeCache) PutSetting(key, value string) error {
	f.settings[key] = value
	return nil
}

func (f *fakeCache) Close() error { return nil }

// passResolver admits every hint as an existing directory.
type passResolver struct{}

var _ ports.PathResolver = (*passResolver)(nil)

func (passResolver) Resolve(game string, hints []string) []domain.ResolvedPath {
	out := make([]domain.ResolvedPath, 0, len(hints))
	for _, h := range hints {
		out = append(out, domain.ResolvedPath{Path: h, Kind: domain.KindDir})
	}
	return out
}

// fakeStore records calls and returns canned reports.
type fakeStore struct {
	backupReport  *domain.BackupReport
	restoreReport *domain.RestoreReport
	manifest      *domain.Manifest
	archives      []domain.Archive
	games         []string
	err           error

	gotGame      string
	gotPaths     []domain.ResolvedPath
	gotArchive   string
	gotOverwrite bool
}

var _ ports.ArchiveStore = (*fakeStore)(nil)

func (f *fakeStore) Backup(ctx context.Context, game string, paths []domain.ResolvedPath) (*domain.BackupReport, error) {
	f.gotGame, f.gotPaths = game, paths
	return f.backupReport, f.err
}

func (f *fakeStore) Inspect(archivePath string) (*domain.Manifest, error) {
	f.gotArchive = archivePath
	return f.manifest, f.err
}

func (f *fakeStore) Restore(ctx context.Context, archivePath string, overwrite bool) (*domain.RestoreReport, error) {
	f.gotArchive, f.gotOverwrite = archivePath, overwrite
	return f.restoreReport, f.err
}

func (f *fakeStore) List(game string) ([]domain.Archive, error) {
	f.gotGame = game
	return f.archives, f.err
}

func (f *fakeStore) Games() ([]string, error) { return f.games, f.err }

// fakeLinker records link operations.
type fakeLinker struct {
	links map[string]string
	err   error

	removed  []string
	copyBack bool
}

var _ ports.Linker = (*fakeLinker)(nil)

func newFakeLinker() *fakeLinker {
	return &fakeLinker{links: make(map[string]string)}
}

func (f *fakeLinker) Establish(ctx context.Context, savePath, target string) error {
	if f.err != nil {
		return f.err
	}
	f.links[savePath] = target
	return nil
}

func (f *fakeLinker) Remove(ctx context.Context, savePath string, copyBack bool) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.links[savePath]; !ok {
		return errors.New("not linked")
	}
	delete(f.links, savePath)
	f.removed = append(f.removed, savePath)
	f.copyBack = copyBack
	return nil
}

func (f *fakeLinker) Status(savePath string) (string, bool, error) {
	target, ok := f.links[savePath]
	return target, ok, nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
