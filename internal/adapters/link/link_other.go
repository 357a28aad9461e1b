//go:build !windows

package link

import (
	"fmt"
	"os"

	"pcsm/internal/application"
)

// createDirLink creates a directory symlink at linkPath pointing to target.
func createDirLink(linkPath, target string) error {
	if err := os.Symlink(target, linkPath); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %v", application.ErrPermission, err)
		}
		return err
	}
	return nil
}

// readDirLink resolves the target of a symlink.
func readDirLink(path string) (string, error) {
	return os.Readlink(path)
}

// isDirLink reports whether the lstat result describes a symlink.
func isDirLink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}
