package commands

import (
	"context"
	"testing"

	"pcsm/internal/domain"
)

func TestRestoreCommand_Validate(t *testing.T) {
	err := (&RestoreCommand{}).Validate()
	if err == nil {
		t.Fatal("expected error for empty archive path, got nil")
	}
	if !contains(err.Error(), "archive path is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRestoreCommand_ConflictsReportedWithoutError(t *testing.T) {
	store := &fakeStore{restoreReport: &domain.RestoreReport{
		Game:      "Hades",
		Conflicts: []string{`C:\Saves\Hades\slot1.sav`, `C:\Saves\Hades\slot2.sav`},
	}}

	res, err := NewRestoreCommand(store, `D:\Backups\Hades\Hades_20240115_120000.zip`, false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if store.gotOverwrite {
		t.Error("store called with overwrite = true")
	}
	if !res.Report.NeedsConfirmation() {
		t.Error("NeedsConfirmation() = false, want true")
	}
	if !contains(res.Message, "2 existing file(s)") {
		t.Errorf("Message = %q, want conflict summary", res.Message)
	}
}

func TestRestoreCommand_OverwriteRestores(t *testing.T) {
	store := &fakeStore{restoreReport: &domain.RestoreReport{
		Game:      "Hades",
		Restored:  []string{`C:\Saves\Hades\slot1.sav`},
		Conflicts: []string{`C:\Saves\Hades\slot1.sav`},
	}}

	res, err := NewRestoreCommand(store, `D:\Backups\Hades\Hades_20240115_120000.zip`, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !store.gotOverwrite {
		t.Error("store called with overwrite = false")
	}
	if !contains(res.Message, "Restored 1 file(s)") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestInspectCommand(t *testing.T) {
	store := &fakeStore{manifest: &domain.Manifest{
		Game: "Hades",
		Paths: []domain.ManifestEntry{
			{Original: `C:\Saves\Hades`, Root: "0", Kind: domain.KindDir},
		},
	}}

	res, err := NewInspectCommand(store, `D:\Backups\Hades\Hades_20240115_120000.zip`).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Manifest.Game != "Hades" || len(res.Manifest.Paths) != 1 {
		t.Errorf("Manifest = %+v", res.Manifest)
	}
}
