package sqlite

import (
	"path/filepath"
	"reflect"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHints_RoundTrip(t *testing.T) {
	c := openTestCache(t)

	if _, ok, err := c.Hints("Elden Ring"); err != nil || ok {
		t.Fatalf("Hints() before put = ok %v, err %v; want miss", ok, err)
	}

	want := []string{`%APPDATA%\EldenRing\`, `~\Saved Games\EldenRing`}
	if err := c.PutHints("Elden Ring", want); err != nil {
		t.Fatalf("PutHints() error = %v", err)
	}

	got, ok, err := c.Hints("Elden Ring")
	if err != nil {
		t.Fatalf("Hints() error = %v", err)
	}
	if !ok {
		t.Fatal("Hints() = miss, want hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hints() = %q, want %q", got, want)
	}
}

func TestHints_EmptyListIsAHit(t *testing.T) {
	c := openTestCache(t)

	if err := c.PutHints("Obscure Game", []string{}); err != nil {
		t.Fatalf("PutHints() error = %v", err)
	}
	got, ok, err := c.Hints("Obscure Game")
	if err != nil {
		t.Fatalf("Hints() error = %v", err)
	}
	if !ok {
		t.Error("Hints() = miss, want hit for cached empty result")
	}
	if len(got) != 0 {
		t.Errorf("Hints() = %q, want empty", got)
	}
}

func TestPutHints_Replaces(t *testing.T) {
	c := openTestCache(t)

	if err := c.PutHints("Game", []string{`C:\old`}); err != nil {
		t.Fatalf("PutHints() error = %v", err)
	}
	if err := c.PutHints("Game", []string{`C:\new`}); err != nil {
		t.Fatalf("PutHints() error = %v", err)
	}

	got, _, err := c.Hints("Game")
	if err != nil {
		t.Fatalf("Hints() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{`C:\new`}) {
		t.Errorf("Hints() = %q, want replacement to win", got)
	}
}

func TestSettings(t *testing.T) {
	c := openTestCache(t)

	if v, err := c.Setting("last_game"); err != nil || v != "" {
		t.Fatalf("Setting() unset = %q, %v; want empty, nil", v, err)
	}
	if err := c.PutSetting("last_game", "Hades"); err != nil {
		t.Fatalf("PutSetting() error = %v", err)
	}
	if err := c.PutSetting("last_game", "Hades II"); err != nil {
		t.Fatalf("PutSetting() error = %v", err)
	}
	v, err := c.Setting("last_game")
	if err != nil {
		t.Fatalf("Setting() error = %v", err)
	}
	if v != "Hades II" {
		t.Errorf("Setting() = %q, want %q", v, "Hades II")
	}
}
