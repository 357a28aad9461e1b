//go:build windows

package link

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pcsm/internal/application"
)

// createDirLink creates an NTFS junction at linkPath pointing to target.
// Junction creation goes through mklink because it needs no extra privilege
// handling beyond what the shell enforces; a refusal surfaces as
// application.ErrPermission so callers can tell the user to elevate.
func createDirLink(linkPath, target string) error {
	cmd := exec.Command("cmd", "/c", "mklink", "/J", linkPath, target)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: mklink /J: %s", application.ErrPermission, strings.TrimSpace(string(out)))
	}
	return nil
}

// readDirLink resolves the target of a junction or symlink.
func readDirLink(path string) (string, error) {
	return os.Readlink(path)
}

// isDirLink reports whether the lstat result describes a reparse point.
func isDirLink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0 || info.Mode()&os.ModeIrregular != 0
}
