// Package link redirects a save folder into a cloud-synced directory.
//
// Two ports.Linker implementations live here: Manager, which uses the OS
// directory-link primitive (an NTFS junction on Windows, a symlink
// elsewhere), and Mirror, a copy-based fallback for setups where links
// cannot be created. New probes the machine and picks one.
package link

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"pcsm/internal/application"
	"pcsm/internal/ports"
)

// BackupSuffix is appended to the original save folder when it is moved
// aside during link establishment. The moved folder is kept as preserved
// source data, never deleted.
const BackupSuffix = "_backup"

// Manager implements ports.Linker with real directory links.
type Manager struct{}

// Ensure Manager implements Linker
var _ ports.Linker = (*Manager)(nil)

// New returns a link-based Linker when the machine supports creating
// directory links, and the copy-based Mirror fallback otherwise.
func New() ports.Linker {
	if Supported() {
		return &Manager{}
	}
	return &Mirror{}
}

// Supported probes whether this process can create directory links, by
// creating and removing one in a temp directory.
func Supported() bool {
	dir, err := os.MkdirTemp("", "pcsm-link-*")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		return false
	}
	return createDirLink(filepath.Join(dir, "probe"), target) == nil
}

// Establish redirects savePath into target. When target is empty the save
// content is copied into it and the copy confirmed before the original
// folder is touched; a target that already holds synced data is left as-is,
// since its content may be newer than the local copy. The original is then
// moved aside to savePath+BackupSuffix and replaced by a link. Re-running
// with the same target is a no-op; an existing link to a different target is
// surfaced, never replaced.
func (m *Manager) Establish(ctx context.Context, savePath, target string) error {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return &application.LinkError{Save: savePath, Target: target, Reason: "sync target is not an existing directory", Cause: err}
	}

	fi, err := os.Lstat(savePath)
	if err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "save folder does not exist", Cause: err}
	}

	if isDirLink(fi) {
		current, err := readDirLink(savePath)
		if err != nil {
			return &application.LinkError{Save: savePath, Target: target, Reason: "cannot read existing link", Cause: err}
		}
		if sameDir(current, target) {
			return nil
		}
		return &application.LinkError{
			Save:   savePath,
			Target: target,
			Reason: "already linked to " + current,
			Cause:  application.ErrLinkWrongTarget,
		}
	}

	if !fi.IsDir() {
		return &application.LinkError{Save: savePath, Target: target, Reason: "save path is not a directory"}
	}

	// Content preservation: an already-seeded target holds the synced state
	// of another machine and wins over the local copy. An empty target gets
	// the save data first, confirmed before the original folder is moved.
	seeded, err := hasEntries(target)
	if err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "reading sync target", Cause: err}
	}
	if !seeded {
		if err := copyTree(ctx, savePath, target); err != nil {
			return &application.LinkError{Save: savePath, Target: target, Reason: "copying save data into sync target", Cause: err}
		}
		if err := verifyTree(savePath, target); err != nil {
			return &application.LinkError{Save: savePath, Target: target, Reason: "sync target copy not confirmed", Cause: err}
		}
	}

	moved := savePath + BackupSuffix
	if err := os.Rename(savePath, moved); err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "moving save folder aside", Cause: err}
	}

	if err := createDirLink(savePath, target); err != nil {
		// Put the original back; no data may be lost on failure.
		if rerr := os.Rename(moved, savePath); rerr != nil {
			return &application.LinkError{
				Save:   savePath,
				Target: target,
				Reason: "link creation failed and the save folder is still at " + moved,
				Cause:  err,
			}
		}
		return &application.LinkError{Save: savePath, Target: target, Reason: "creating directory link", Cause: err}
	}

	return nil
}

// Remove deletes the link at savePath and recreates a plain directory,
// optionally copying the synced content back into it.
func (m *Manager) Remove(ctx context.Context, savePath string, copyBack bool) error {
	fi, err := os.Lstat(savePath)
	if err != nil {
		return &application.LinkError{Save: savePath, Reason: "save path does not exist", Cause: err}
	}
	if !isDirLink(fi) {
		return &application.LinkError{Save: savePath, Reason: "not a directory link", Cause: application.ErrNotLinked}
	}

	target, err := readDirLink(savePath)
	if err != nil {
		return &application.LinkError{Save: savePath, Reason: "cannot read link target", Cause: err}
	}

	if err := os.Remove(savePath); err != nil {
		return &application.LinkError{Save: savePath, Reason: "removing link", Cause: err}
	}
	if err := os.MkdirAll(savePath, 0755); err != nil {
		return &application.LinkError{Save: savePath, Reason: "recreating save folder", Cause: err}
	}

	if copyBack {
		if err := copyTree(ctx, target, savePath); err != nil {
			return &application.LinkError{Save: savePath, Reason: "copying synced content back", Cause: err}
		}
	}
	return nil
}

// Status reports whether savePath currently redirects somewhere.
func (m *Manager) Status(savePath string) (string, bool, error) {
	fi, err := os.Lstat(savePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if !isDirLink(fi) {
		return "", false, nil
	}
	target, err := readDirLink(savePath)
	if err != nil {
		return "", false, err
	}
	return target, true, nil
}

// sameDir compares two directory paths the way the single-user-profile
// filesystem does: cleaned and case-insensitively.
func sameDir(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
