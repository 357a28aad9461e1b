package config

import (
	"os"
	"path/filepath"
)

// DefaultBackupDirName is the folder under the user's home directory that
// receives backup archives when PCSM_BACKUP_DIR is not set.
const DefaultBackupDirName = "GameSaveBackups"

// BackupDir returns the backup root from the PCSM_BACKUP_DIR env var,
// falling back to ~/GameSaveBackups.
func BackupDir() string {
	if env := os.Getenv("PCSM_BACKUP_DIR"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultBackupDirName)
}

// CachePath returns the hint-cache database path from the PCSM_CACHE_DB env
// var, falling back to ~/.pcsm/cache.db.
func CachePath() string {
	if env := os.Getenv("PCSM_CACHE_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pcsm", "cache.db")
}
