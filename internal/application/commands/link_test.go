package commands

import (
	"context"
	"testing"
)

func TestLinkCommand_Validate(t *testing.T) {
	tests := []struct {
		name   string
		save   string
		target string
		errMsg string
	}{
		{name: "valid", save: `C:\Saves\Hades`, target: `C:\OneDrive\Saves\Hades`},
		{name: "empty save", target: `C:\OneDrive\Saves\Hades`, errMsg: "save folder path is required"},
		{name: "empty target", save: `C:\Saves\Hades`, errMsg: "synced target folder is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&LinkCommand{SavePath: tt.save, Target: tt.target}).Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestLinkCommand_Execute(t *testing.T) {
	linker := newFakeLinker()

	res, err := NewLinkCommand(linker, `C:\Saves\Hades`, `C:\OneDrive\Saves\Hades`).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := linker.links[`C:\Saves\Hades`]; got != `C:\OneDrive\Saves\Hades` {
		t.Errorf("link target = %q", got)
	}
	if !contains(res.Message, "Linked") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestUnlinkCommand_Execute(t *testing.T) {
	linker := newFakeLinker()
	linker.links[`C:\Saves\Hades`] = `C:\OneDrive\Saves\Hades`

	res, err := NewUnlinkCommand(linker, `C:\Saves\Hades`, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !linker.copyBack {
		t.Error("copyBack not passed through")
	}
	if !contains(res.Message, "copied synced content back") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestLinkStatusCommand(t *testing.T) {
	linker := newFakeLinker()
	linker.links[`C:\Saves\Hades`] = `C:\OneDrive\Saves\Hades`

	res, err := NewLinkStatusCommand(linker, `C:\Saves\Hades`).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !res.Linked || res.Target != `C:\OneDrive\Saves\Hades` {
		t.Errorf("status = linked %v target %q", res.Linked, res.Target)
	}

	res, err = NewLinkStatusCommand(linker, `C:\Saves\Other`).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Linked {
		t.Error("Linked = true for unlinked folder")
	}
}
