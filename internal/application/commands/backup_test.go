package commands

import (
	"context"
	"testing"
	"time"

	"pcsm/internal/domain"
)

func TestBackupCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		game    string
		paths   []domain.ResolvedPath
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid",
			game:  "Hades",
			paths: []domain.ResolvedPath{{Path: `C:\Saves\Hades`, Kind: domain.KindDir}},
		},
		{
			name:    "empty game",
			game:    "",
			paths:   []domain.ResolvedPath{{Path: `C:\Saves\Hades`, Kind: domain.KindDir}},
			wantErr: true,
			errMsg:  "game name is required",
		},
		{
			name:    "no paths",
			game:    "Hades",
			wantErr: true,
			errMsg:  "at least one save location is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &BackupCommand{Game: tt.game, Paths: tt.paths}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBackupCommand_Execute(t *testing.T) {
	paths := []domain.ResolvedPath{
		{Path: `C:\Saves\Hades`, Kind: domain.KindDir},
		{Path: `C:\Saves\settings.cfg`, Kind: domain.KindFile},
	}
	store := &fakeStore{backupReport: &domain.BackupReport{
		Archive: domain.Archive{Game: "Hades", Name: "Hades_20240115_120000.zip", CreatedAt: time.Now()},
		Entries: []domain.ManifestEntry{
			{Original: paths[0].Path, Root: "0", Kind: domain.KindDir},
			{Original: paths[1].Path, Root: "1", Kind: domain.KindFile},
		},
	}}

	res, err := NewBackupCommand(store, "Hades", paths).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if store.gotGame != "Hades" || len(store.gotPaths) != 2 {
		t.Errorf("store called with (%q, %d paths)", store.gotGame, len(store.gotPaths))
	}
	if !contains(res.Message, "Hades_20240115_120000.zip") {
		t.Errorf("Message = %q, want archive name in it", res.Message)
	}
}

func TestBackupCommand_PartialMessage(t *testing.T) {
	paths := []domain.ResolvedPath{
		{Path: `C:\Saves\a`, Kind: domain.KindDir},
		{Path: `C:\Saves\b`, Kind: domain.KindDir},
	}
	store := &fakeStore{backupReport: &domain.BackupReport{
		Archive: domain.Archive{Game: "Hades", Name: "Hades_20240115_120000.zip"},
		Entries: []domain.ManifestEntry{{Original: paths[0].Path, Root: "0", Kind: domain.KindDir}},
		Failed:  []domain.PathFailure{{Path: paths[1].Path, Reason: "permission denied"}},
	}}

	res, err := NewBackupCommand(store, "Hades", paths).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(res.Message, "1 of 2") {
		t.Errorf("Message = %q, want partial summary", res.Message)
	}
}
