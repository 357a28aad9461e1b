package domain

import (
	"testing"
	"time"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		game string
		want string
	}{
		{
			name: "plain name",
			game: "Elden Ring",
			want: "Elden Ring",
		},
		{
			name: "illegal characters replaced",
			game: `Divinity: Original Sin 2`,
			want: "Divinity_ Original Sin 2",
		},
		{
			name: "path separators replaced",
			game: `a/b\c`,
			want: "a_b_c",
		},
		{
			name: "dots and dashes kept",
			game: "S.T.A.L.K.E.R. - Shadow of Chernobyl",
			want: "S.T.A.L.K.E.R. - Shadow of Chernobyl",
		},
		{
			name: "nothing left",
			game: "???",
			want: "Game",
		},
		{
			name: "empty",
			game: "",
			want: "Game",
		},
		{
			name: "current directory",
			game: ".",
			want: "Game",
		},
		{
			name: "parent directory",
			game: "..",
			want: "Game",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeName(tt.game); got != tt.want {
				t.Errorf("SafeName(%q) = %q, want %q", tt.game, got, tt.want)
			}
		})
	}
}

func TestArchiveFileName(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

	got := ArchiveFileName("Game", at)
	if got != "Game_20240115_120000.zip" {
		t.Errorf("ArchiveFileName = %q, want Game_20240115_120000.zip", got)
	}
}

func TestParseArchiveFileName(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	name := ArchiveFileName("Hollow Knight", at)

	game, created, err := ParseArchiveFileName(name)
	if err != nil {
		t.Fatalf("ParseArchiveFileName(%q): %v", name, err)
	}
	if game != "Hollow Knight" {
		t.Errorf("game = %q, want Hollow Knight", game)
	}
	if !created.Equal(at) {
		t.Errorf("created = %v, want %v", created, at)
	}
}

func TestParseArchiveFileName_GameWithUnderscores(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 30, 15, 0, time.Local)
	name := ArchiveFileName("Half_Life_2", at)

	game, created, err := ParseArchiveFileName(name)
	if err != nil {
		t.Fatalf("ParseArchiveFileName(%q): %v", name, err)
	}
	if game != "Half_Life_2" {
		t.Errorf("game = %q, want Half_Life_2", game)
	}
	if !created.Equal(at) {
		t.Errorf("created = %v, want %v", created, at)
	}
}

func TestParseArchiveFileName_Invalid(t *testing.T) {
	for _, name := range []string{"notazip.txt", "plain.zip", "_.zip", ""} {
		if _, _, err := ParseArchiveFileName(name); err == nil {
			t.Errorf("ParseArchiveFileName(%q): expected error, got nil", name)
		}
	}
}

func TestRootTableValidate(t *testing.T) {
	full := func() RootTable {
		tokens := make(map[RootToken]string, len(KnownTokens))
		for _, tok := range KnownTokens {
			tokens[tok] = "/tmp/root"
		}
		return RootTable{
			Tokens:     tokens,
			Home:       "/tmp/home",
			Documents:  "/tmp/docs",
			SavedGames: "/tmp/saved",
		}
	}

	if err := full().Validate(); err != nil {
		t.Errorf("complete table: unexpected error: %v", err)
	}

	missingToken := full()
	delete(missingToken.Tokens, TokenAppData)
	if err := missingToken.Validate(); err == nil {
		t.Error("missing token mapping: expected error, got nil")
	}

	missingDocs := full()
	missingDocs.Documents = ""
	if err := missingDocs.Validate(); err == nil {
		t.Error("missing documents root: expected error, got nil")
	}

	// A machine without a sync client has no OneDrive root; that is fine.
	noCloud := full()
	noCloud.OneDrive = ""
	if err := noCloud.Validate(); err != nil {
		t.Errorf("missing cloud root should be accepted: %v", err)
	}
}
