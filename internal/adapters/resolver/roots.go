package resolver

import (
	"os"
	"path/filepath"
	"runtime"

	"pcsm/internal/domain"
)

// DefaultRoots builds the placeholder table for the current machine. On
// Windows the environment is authoritative, with the conventional profile
// layout as fallback; on other systems the table degrades to the native
// per-user directories so resolution stays usable in tests and on machines
// that only mount a save folder.
func DefaultRoots() domain.RootTable {
	home, _ := os.UserHomeDir()

	var appData, localAppData, programData, public string
	switch runtime.GOOS {
	case "windows":
		appData = envOr("APPDATA", filepath.Join(home, "AppData", "Roaming"))
		localAppData = envOr("LOCALAPPDATA", filepath.Join(home, "AppData", "Local"))
		programData = envOr("PROGRAMDATA", `C:\ProgramData`)
		public = envOr("PUBLIC", `C:\Users\Public`)
	case "darwin":
		appData = filepath.Join(home, "Library", "Application Support")
		localAppData = appData
		programData = "/Library/Application Support"
		public = "/Users/Shared"
	default:
		appData = filepath.Join(home, ".config")
		localAppData = filepath.Join(home, ".local", "share")
		programData = "/var/lib"
		public = filepath.Join(home, "Public")
	}

	return domain.RootTable{
		Tokens: map[domain.RootToken]string{
			domain.TokenUserProfile:  home,
			domain.TokenHomePath:     envOr("HOMEPATH", home),
			domain.TokenHomeDrive:    envOr("HOMEDRIVE", "C:"),
			domain.TokenAppData:      appData,
			domain.TokenLocalAppData: localAppData,
			domain.TokenProgramData:  programData,
			domain.TokenPublic:       public,
		},
		Home:       home,
		Documents:  filepath.Join(home, "Documents"),
		SavedGames: filepath.Join(home, "Saved Games"),
		OneDrive:   detectOneDrive(home),
	}
}

// detectOneDrive returns the OneDrive sync root, empty when no sync client
// is set up. The OneDrive env var is set by the client itself.
func detectOneDrive(home string) string {
	if env := os.Getenv("OneDrive"); env != "" {
		return env
	}
	candidate := filepath.Join(home, "OneDrive")
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
