package domain

import "fmt"

// RootToken identifies a well-known user-profile root that may appear as a
// placeholder inside a save location hint (e.g. "%APPDATA%\Game\Saves").
type RootToken string

const (
	TokenUserProfile  RootToken = "%USERPROFILE%"
	TokenHomePath     RootToken = "%HOMEPATH%"
	TokenHomeDrive    RootToken = "%HOMEDRIVE%"
	TokenAppData      RootToken = "%APPDATA%"
	TokenLocalAppData RootToken = "%LOCALAPPDATA%"
	TokenProgramData  RootToken = "%PROGRAMDATA%"
	TokenPublic       RootToken = "%PUBLIC%"
)

// KnownTokens lists every placeholder the resolver substitutes. Hints that
// carry a token outside this set are skipped rather than half-expanded.
var KnownTokens = []RootToken{
	TokenUserProfile,
	TokenHomePath,
	TokenHomeDrive,
	TokenAppData,
	TokenLocalAppData,
	TokenProgramData,
	TokenPublic,
}

// Bare prefixes accepted at the start of a hint in place of a token.
// "OneDrive" covers cloud-mapped variants like "OneDrive\Documents\...".
const (
	PrefixHome       = "~"
	PrefixDocuments  = "Documents"
	PrefixSavedGames = "Saved Games"
	PrefixOneDrive   = "OneDrive"
)

// RootTable maps each placeholder token to its concrete root directory on
// the current machine. It is built once at startup and validated before use.
type RootTable struct {
	Tokens map[RootToken]string

	// Roots backing the bare prefixes above.
	Home       string
	Documents  string
	SavedGames string

	// Detected cloud-sync roots, empty when the sync client is absent.
	OneDrive string
}

// Validate reports the first missing mapping. A missing cloud-sync root is
// fine; every token and profile root must be set.
func (t RootTable) Validate() error {
	for _, tok := range KnownTokens {
		if t.Tokens[tok] == "" {
			return fmt.Errorf("root table: no mapping for %s", tok)
		}
	}
	if t.Home == "" {
		return fmt.Errorf("root table: home root not set")
	}
	if t.Documents == "" {
		return fmt.Errorf("root table: documents root not set")
	}
	if t.SavedGames == "" {
		return fmt.Errorf("root table: saved-games root not set")
	}
	return nil
}
