package views

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// stubStore serves one archive and flips between conflict and success
// depending on the overwrite flag.
type stubStore struct {
	archive       domain.Archive
	conflicts     []string
	lastOverwrite bool
}

var _ ports.ArchiveStore = (*stubStore)(nil)

func (s *stubStore) Backup(ctx context.Context, game string, paths []domain.ResolvedPath) (*domain.BackupReport, error) {
	return &domain.BackupReport{Archive: s.archive}, nil
}

func (s *stubStore) Inspect(archivePath string) (*domain.Manifest, error) {
	return &domain.Manifest{Game: s.archive.Game}, nil
}

func (s *stubStore) Restore(ctx context.Context, archivePath string, overwrite bool) (*domain.RestoreReport, error) {
	s.lastOverwrite = overwrite
	if !overwrite && len(s.conflicts) > 0 {
		return &domain.RestoreReport{Game: s.archive.Game, Conflicts: s.conflicts}, nil
	}
	return &domain.RestoreReport{
		Game:      s.archive.Game,
		Restored:  []string{`C:\Saves\Hades\slot1.sav`},
		Conflicts: s.conflicts,
	}, nil
}

func (s *stubStore) List(game string) ([]domain.Archive, error) {
	return []domain.Archive{s.archive}, nil
}

func (s *stubStore) Games() ([]string, error) { return []string{s.archive.Game}, nil }

func testArchive() domain.Archive {
	return domain.Archive{
		Game:      "Hades",
		Name:      "Hades_20240115_120000.zip",
		Path:      `D:\Backups\Hades\Hades_20240115_120000.zip`,
		CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

// drive runs a command returned by Update and feeds the resulting message
// back into the model, like the bubbletea runtime would.
func drive(t *testing.T, m interface {
	Update(tea.Msg) (tea.Model, tea.Cmd)
}, msg tea.Msg) {
	t.Helper()
	for msg != nil {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func TestArchivesModel_RestoreConflictAsksOnce(t *testing.T) {
	store := &stubStore{archive: testArchive(), conflicts: []string{
		`C:\Saves\Hades\slot1.sav`,
		`C:\Saves\Hades\slot2.sav`,
	}}
	m := NewArchivesModel(store)

	drive(t, m, m.SetGame("Hades")())

	// Restore the selected archive; the dry pass reports conflicts.
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.conflicts) != 2 {
		t.Fatalf("conflicts = %d, want 2", len(m.conflicts))
	}
	if !strings.Contains(m.View(), "2 file(s) already exist") {
		t.Errorf("View() missing aggregate conflict prompt:\n%s", m.View())
	}

	// A single confirmation covers every conflict.
	drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if !store.lastOverwrite {
		t.Error("confirming did not rerun the restore with overwrite")
	}
	if len(m.conflicts) != 0 {
		t.Error("conflicts not cleared after confirmation")
	}
}

func TestArchivesModel_CancelWritesNothing(t *testing.T) {
	store := &stubStore{archive: testArchive(), conflicts: []string{`C:\Saves\Hades\slot1.sav`}}
	m := NewArchivesModel(store)

	drive(t, m, m.SetGame("Hades")())
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	if store.lastOverwrite {
		t.Error("cancelling must not rerun the restore with overwrite")
	}
	if !strings.Contains(m.Message, "nothing was written") {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestArchivesModel_NoConflictRestoresDirectly(t *testing.T) {
	store := &stubStore{archive: testArchive()}
	m := NewArchivesModel(store)

	drive(t, m, m.SetGame("Hades")())
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.conflicts) != 0 {
		t.Errorf("conflicts = %v, want none", m.conflicts)
	}
	if !strings.Contains(m.Message, "Restored 1 file(s)") {
		t.Errorf("Message = %q", m.Message)
	}
}
