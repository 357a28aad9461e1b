package zipstore

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pcsm/internal/application"
	"pcsm/internal/domain"
)

// Inspect reads the manifest out of an archive. An archive without a
// readable manifest cannot be restored, because the origin of its content
// is unknowable.
func (s *Store) Inspect(archivePath string) (*domain.Manifest, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	return readManifest(&zr.Reader, filepath.Base(archivePath))
}

func readManifest(zr *zip.Reader, archiveName string) (*domain.Manifest, error) {
	for _, f := range zr.File {
		if f.Name != domain.ManifestName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, application.NewManifestCorrupt(archiveName, err.Error())
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, application.NewManifestCorrupt(archiveName, err.Error())
		}
		var manifest domain.Manifest
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, application.NewManifestCorrupt(archiveName, err.Error())
		}
		if len(manifest.Paths) == 0 {
			return nil, application.NewManifestCorrupt(archiveName, "metadata lists no save paths")
		}
		return &manifest, nil
	}
	return nil, application.NewManifestMissing(archiveName)
}

type restoreTarget struct {
	file *zip.File
	dest string
}

// Restore writes every archive entry back to its recorded original
// location. Conflicts are collected across the whole set first: without
// overwrite, any pre-existing destination file stops the operation before
// the first write and the aggregate list is returned for one confirmation.
// Per-entry write failures do not abort remaining entries.
func (s *Store) Restore(ctx context.Context, archivePath string, overwrite bool) (*domain.RestoreReport, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	manifest, err := readManifest(&zr.Reader, filepath.Base(archivePath))
	if err != nil {
		return nil, err
	}

	report := &domain.RestoreReport{Game: manifest.Game}

	var targets []restoreTarget
	for _, f := range zr.File {
		if f.Name == domain.ManifestName || strings.HasSuffix(f.Name, "/") {
			continue
		}
		root, rel, ok := strings.Cut(f.Name, "/")
		if !ok {
			continue
		}
		entry, ok := manifest.EntryForRoot(root)
		if !ok {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, "../") || strings.Contains(rel, "/../") {
			report.Failed = append(report.Failed, domain.PathFailure{
				Path:   f.Name,
				Reason: "entry escapes its restore root",
			})
			continue
		}
		dest := entry.Original
		if entry.Kind == domain.KindDir {
			dest = filepath.Join(entry.Original, filepath.FromSlash(rel))
		}
		targets = append(targets, restoreTarget{file: f, dest: dest})
	}

	for _, tg := range targets {
		if _, err := os.Stat(tg.dest); err == nil {
			report.Conflicts = append(report.Conflicts, tg.dest)
		}
	}
	if len(report.Conflicts) > 0 && !overwrite {
		return report, nil
	}

	for _, tg := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := extractFile(tg.file, tg.dest); err != nil {
			report.Failed = append(report.Failed, domain.PathFailure{
				Path:   tg.dest,
				Reason: err.Error(),
			})
			continue
		}
		report.Restored = append(report.Restored, tg.dest)
	}

	return report, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
