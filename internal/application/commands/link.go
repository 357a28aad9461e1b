package commands

import (
	"context"
	"fmt"

	"pcsm/internal/application"
	"pcsm/internal/ports"
)

// LinkResult contains the result of linking a save folder
type LinkResult struct {
	SavePath string
	Target   string
	Message  string
}

// LinkCommand replaces a save folder with a link into a synced folder, after
// moving the folder's content there.
type LinkCommand struct {
	linker   ports.Linker
	SavePath string
	Target   string
}

// NewLinkCommand creates a new LinkCommand
func NewLinkCommand(linker ports.Linker, savePath, target string) *LinkCommand {
	return &LinkCommand{
		linker:   linker,
		SavePath: savePath,
		Target:   target,
	}
}

// Validate checks if the link operation is valid
func (c *LinkCommand) Validate() error {
	if c.SavePath == "" {
		return &application.ValidationError{
			Field:   "save",
			Message: "save folder path is required",
		}
	}
	if c.Target == "" {
		return &application.ValidationError{
			Field:   "target",
			Message: "synced target folder is required",
		}
	}
	return nil
}

// Execute runs the link command
func (c *LinkCommand) Execute(ctx context.Context) (*LinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.linker.Establish(ctx, c.SavePath, c.Target); err != nil {
		return nil, err
	}

	return &LinkResult{
		SavePath: c.SavePath,
		Target:   c.Target,
		Message:  fmt.Sprintf("Linked %s -> %s", c.SavePath, c.Target),
	}, nil
}

// UnlinkResult contains the result of removing a save-folder link
type UnlinkResult struct {
	SavePath string
	Message  string
}

// UnlinkCommand removes a save-folder link, optionally copying the synced
// content back into a plain folder.
type UnlinkCommand struct {
	linker   ports.Linker
	SavePath string
	CopyBack bool
}

// NewUnlinkCommand creates a new UnlinkCommand
func NewUnlinkCommand(linker ports.Linker, savePath string, copyBack bool) *UnlinkCommand {
	return &UnlinkCommand{
		linker:   linker,
		SavePath: savePath,
		CopyBack: copyBack,
	}
}

// Validate checks if the unlink operation is valid
func (c *UnlinkCommand) Validate() error {
	if c.SavePath == "" {
		return &application.ValidationError{
			Field:   "save",
			Message: "save folder path is required",
		}
	}
	return nil
}

// Execute runs the unlink command
func (c *UnlinkCommand) Execute(ctx context.Context) (*UnlinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.linker.Remove(ctx, c.SavePath, c.CopyBack); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Unlinked %s", c.SavePath)
	if c.CopyBack {
		msg = fmt.Sprintf("Unlinked %s and copied synced content back", c.SavePath)
	}
	return &UnlinkResult{SavePath: c.SavePath, Message: msg}, nil
}

// LinkStatusResult describes whether a save folder is currently linked
type LinkStatusResult struct {
	SavePath string
	Target   string
	Linked   bool
}

// LinkStatusCommand reports the link state of a save folder
type LinkStatusCommand struct {
	linker   ports.Linker
	SavePath string
}

// NewLinkStatusCommand creates a new LinkStatusCommand
func NewLinkStatusCommand(linker ports.Linker, savePath string) *LinkStatusCommand {
	return &LinkStatusCommand{linker: linker, SavePath: savePath}
}

// Validate checks if the status operation is valid
func (c *LinkStatusCommand) Validate() error {
	if c.SavePath == "" {
		return &application.ValidationError{
			Field:   "save",
			Message: "save folder path is required",
		}
	}
	return nil
}

// Execute runs the link status command
func (c *LinkStatusCommand) Execute(ctx context.Context) (*LinkStatusResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target, linked, err := c.linker.Status(c.SavePath)
	if err != nil {
		return nil, err
	}
	return &LinkStatusResult{SavePath: c.SavePath, Target: target, Linked: linked}, nil
}
