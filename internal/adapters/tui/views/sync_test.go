package views

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/ports"
)

// stubLinker records link operations and serves the resulting state back
// through Status.
type stubLinker struct {
	target       string
	linked       bool
	lastSave     string
	lastCopyBack bool
	removed      bool
}

var _ ports.Linker = (*stubLinker)(nil)

func (l *stubLinker) Establish(ctx context.Context, savePath, target string) error {
	l.lastSave = savePath
	l.target = target
	l.linked = true
	return nil
}

func (l *stubLinker) Remove(ctx context.Context, savePath string, copyBack bool) error {
	l.lastSave = savePath
	l.lastCopyBack = copyBack
	l.removed = true
	l.linked = false
	l.target = ""
	return nil
}

func (l *stubLinker) Status(savePath string) (string, bool, error) {
	return l.target, l.linked, nil
}

func TestSyncModel_LinkEstablishes(t *testing.T) {
	linker := &stubLinker{}
	m := NewSyncModel(linker)

	drive(t, m, m.SetPath("Hades", `C:\Saves\Hades`)())
	if m.linked {
		t.Fatal("fresh save folder reported as linked")
	}

	drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`D:\Sync\Hades`)})
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if linker.lastSave != `C:\Saves\Hades` || linker.target != `D:\Sync\Hades` {
		t.Errorf("Establish(%q, %q)", linker.lastSave, linker.target)
	}
	if !m.linked {
		t.Error("model not marked linked after establishing")
	}
	if !strings.Contains(m.Message, "Linked") {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestSyncModel_EmptyTargetRejected(t *testing.T) {
	linker := &stubLinker{}
	m := NewSyncModel(linker)

	drive(t, m, m.SetPath("Hades", `C:\Saves\Hades`)())
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if linker.linked {
		t.Error("Establish called without a target")
	}
	if !m.MessageErr {
		t.Errorf("expected an error message, got %q", m.Message)
	}
}

func TestSyncModel_UnlinkTearsDown(t *testing.T) {
	linker := &stubLinker{target: `D:\Sync\Hades`, linked: true}
	m := NewSyncModel(linker)

	drive(t, m, m.SetPath("Hades", `C:\Saves\Hades`)())
	if !m.linked || !strings.Contains(m.View(), `Linked to D:\Sync\Hades`) {
		t.Fatalf("existing link not shown:\n%s", m.View())
	}

	drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})

	if !linker.removed || !linker.lastCopyBack {
		t.Errorf("Remove(copyBack) not called: removed=%v copyBack=%v", linker.removed, linker.lastCopyBack)
	}
	if m.linked {
		t.Error("model still marked linked after unlink")
	}
}
