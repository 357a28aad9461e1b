package link

import (
	"context"
	"os"

	"pcsm/internal/application"
	"pcsm/internal/ports"
)

// Mirror is the copy-based fallback Linker for machines where directory
// links cannot be created. It seeds the sync target with the save content
// but cannot redirect writes, so Status never reports a link and each sync
// is an explicit copy.
type Mirror struct{}

// Ensure Mirror implements Linker
var _ ports.Linker = (*Mirror)(nil)

// Establish seeds an empty target with the save content. A target that
// already holds synced data is left untouched: without link support there is
// no way to tell which side is newer, and the synced side wins.
func (m *Mirror) Establish(ctx context.Context, savePath, target string) error {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return &application.LinkError{Save: savePath, Target: target, Reason: "sync target is not an existing directory", Cause: err}
	}
	if info, err := os.Stat(savePath); err != nil || !info.IsDir() {
		return &application.LinkError{Save: savePath, Target: target, Reason: "save path is not an existing directory", Cause: err}
	}

	seeded, err := hasEntries(target)
	if err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "reading sync target", Cause: err}
	}
	if seeded {
		return nil
	}

	if err := copyTree(ctx, savePath, target); err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "copying save data into sync target", Cause: err}
	}
	if err := verifyTree(savePath, target); err != nil {
		return &application.LinkError{Save: savePath, Target: target, Reason: "sync target copy not confirmed", Cause: err}
	}
	return nil
}

// Remove has no link to tear down. The filesystem keeps no record of the
// sync target in mirror mode, so copying content back is up to the caller.
func (m *Mirror) Remove(ctx context.Context, savePath string, copyBack bool) error {
	if copyBack {
		return &application.LinkError{Save: savePath, Reason: "mirror mode keeps no link; copy the synced folder back manually"}
	}
	return nil
}

// Status never reports a link: mirror mode leaves nothing on disk to
// inspect.
func (m *Mirror) Status(savePath string) (string, bool, error) {
	return "", false, nil
}
