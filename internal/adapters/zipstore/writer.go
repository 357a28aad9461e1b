package zipstore

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"pcsm/internal/application"
	"pcsm/internal/domain"
)

// Backup packages the resolved paths for one game into a new timestamped
// archive. Each path is copied under a relative root equal to its index in
// the set; a path that turns unreadable mid-copy is dropped from the
// manifest and reported, and the archive is finalized with the rest. A
// canceled backup removes the half-written zip instead of presenting it as
// complete.
func (s *Store) Backup(ctx context.Context, game string, paths []domain.ResolvedPath) (*domain.BackupReport, error) {
	if len(paths) == 0 {
		return nil, application.ErrNoPaths
	}

	dir := filepath.Join(s.root, domain.SafeName(game))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create game backup dir: %w", err)
	}

	now := time.Now()
	name := domain.ArchiveFileName(game, now)
	zipPath := filepath.Join(dir, name)

	f, err := os.Create(zipPath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	zw := zip.NewWriter(f)

	discard := func() {
		zw.Close()
		f.Close()
		os.Remove(zipPath)
	}

	report := &domain.BackupReport{
		Archive: domain.Archive{Game: game, Path: zipPath, Name: name, CreatedAt: now},
	}
	manifest := domain.Manifest{Game: game}

	for i, rp := range paths {
		if err := ctx.Err(); err != nil {
			discard()
			return nil, err
		}

		root := strconv.Itoa(i)
		var pathErr error
		var skipped []domain.PathFailure

		if rp.IsDir() {
			skipped, pathErr = s.addTree(ctx, zw, rp.Path, root)
		} else {
			pathErr = addFile(zw, rp.Path, path.Join(root, filepath.Base(rp.Path)))
		}

		if pathErr != nil {
			if ctx.Err() != nil {
				discard()
				return nil, ctx.Err()
			}
			report.Failed = append(report.Failed, domain.PathFailure{
				Path:   rp.Path,
				Reason: pathErr.Error(),
			})
			continue
		}
		report.Skipped = append(report.Skipped, skipped...)

		entry := domain.ManifestEntry{Original: rp.Path, Root: root, Kind: rp.Kind}
		manifest.Paths = append(manifest.Paths, entry)
		report.Entries = append(report.Entries, entry)
	}

	if err := writeManifest(zw, manifest); err != nil {
		discard()
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		os.Remove(zipPath)
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(zipPath)
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	return report, nil
}

// addTree copies a directory recursively, preserving its internal relative
// structure under the given archive root. A failure on the directory itself
// aborts the path; failures on individual files inside it are skipped and
// reported so one locked file does not sink the rest of the tree.
func (s *Store) addTree(ctx context.Context, zw *zip.Writer, base, root string) ([]domain.PathFailure, error) {
	if _, err := os.Stat(base); err != nil {
		return nil, err
	}

	var skipped []domain.PathFailure
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if p == base {
				return walkErr
			}
			skipped = append(skipped, domain.PathFailure{Path: p, Reason: walkErr.Error()})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		if err := addFile(zw, p, path.Join(root, filepath.ToSlash(rel))); err != nil {
			skipped = append(skipped, domain.PathFailure{Path: p, Reason: err.Error()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}

func addFile(zw *zip.Writer, filePath, dest string) error {
	src, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func writeManifest(zw *zip.Writer, manifest domain.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	w, err := zw.Create(domain.ManifestName)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
