package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ArchiveTimeLayout is the second-granularity timestamp embedded in archive
// file names. Lexicographic order equals chronological order.
const ArchiveTimeLayout = "20060102_150405"

// Archive describes one backup zip on disk.
type Archive struct {
	Game      string
	Path      string
	Name      string
	CreatedAt time.Time
}

var unsafeNameChars = regexp.MustCompile(`[^\w\s.-]`)

// SafeName strips characters that are illegal in file names from a game
// identifier, falling back to "Game" when nothing survives. "." and ".."
// also fall back: joined onto the backup root they would name the root
// itself or escape it.
func SafeName(game string) string {
	safe := strings.TrimSpace(unsafeNameChars.ReplaceAllString(game, "_"))
	if safe == "" || safe == "." || safe == ".." {
		return "Game"
	}
	return safe
}

// ArchiveFileName builds the timestamped archive name for a game. Two
// backups of the same game in the same second would collide, so callers get
// at most one archive per game per second.
func ArchiveFileName(game string, t time.Time) string {
	return fmt.Sprintf("%s_%s.zip", SafeName(game), t.Format(ArchiveTimeLayout))
}

// ParseArchiveFileName splits an archive file name back into the sanitized
// game name and creation time.
func ParseArchiveFileName(name string) (game string, t time.Time, err error) {
	base := strings.TrimSuffix(name, ".zip")
	if base == name {
		return "", time.Time{}, fmt.Errorf("not an archive name: %s", name)
	}
	idx := strings.LastIndex(base, "_")
	if idx <= 0 {
		return "", time.Time{}, fmt.Errorf("not an archive name: %s", name)
	}
	// The timestamp spans the last two underscore-separated fields.
	idx = strings.LastIndex(base[:idx], "_")
	if idx <= 0 {
		return "", time.Time{}, fmt.Errorf("not an archive name: %s", name)
	}
	t, err = time.ParseInLocation(ArchiveTimeLayout, base[idx+1:], time.Local)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("bad archive timestamp in %s: %w", name, err)
	}
	return base[:idx], t, nil
}
