package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pcsm/internal/application/commands"
)

// RegisterWriteTools adds all state-changing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(createBackupTool(), createBackupHandler(deps))
	s.AddTool(restoreBackupTool(), restoreBackupHandler(deps))
	s.AddTool(linkTool(), linkHandler(deps))
	s.AddTool(unlinkTool(), unlinkHandler(deps))
}

// --- create_backup ---

func createBackupTool() mcp.Tool {
	return mcp.NewTool("create_backup",
		mcp.WithDescription("Resolve a game's save locations and archive them into a timestamped zip backup."),
		mcp.WithString("game",
			mcp.Description("Game title, e.g. \"Elden Ring\""),
			mcp.Required(),
		),
	)
}

func createBackupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		game := req.GetString("game", "")

		resolved, err := commands.NewResolveCommand(deps.Locator, deps.Cache, deps.Resolver, game, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(resolved.Paths) == 0 {
			return toolError(fmt.Errorf("no existing save locations found for %s", game))
		}

		result, err := commands.NewBackupCommand(deps.Store, game, resolved.Paths).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		for _, f := range result.Report.Failed {
			fmt.Fprintf(&sb, "\nskipped %s: %s", f.Path, f.Reason)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- restore_backup ---

func restoreBackupTool() mcp.Tool {
	return mcp.NewTool("restore_backup",
		mcp.WithDescription("Restore a backup archive to the locations recorded in its manifest. Without overwrite, a restore that would replace existing files does nothing and reports the conflicts."),
		mcp.WithString("archive",
			mcp.Description("Path to the backup zip"),
			mcp.Required(),
		),
		mcp.WithBoolean("overwrite",
			mcp.Description("Overwrite existing files"),
		),
	)
}

func restoreBackupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		archive := req.GetString("archive", "")
		overwrite := req.GetBool("overwrite", false)

		result, err := commands.NewRestoreCommand(deps.Store, archive, overwrite).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		if result.Report.NeedsConfirmation() {
			for _, c := range result.Report.Conflicts {
				fmt.Fprintf(&sb, "\nexists: %s", c)
			}
			sb.WriteString("\nRun again with overwrite=true to replace them all.")
		}
		for _, f := range result.Report.Failed {
			fmt.Fprintf(&sb, "\nfailed %s: %s", f.Path, f.Reason)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- link ---

func linkTool() mcp.Tool {
	return mcp.NewTool("link",
		mcp.WithDescription("Move a save folder's content into a synced folder and replace the save folder with a link pointing there."),
		mcp.WithString("save_folder",
			mcp.Description("Path to the save folder"),
			mcp.Required(),
		),
		mcp.WithString("synced_folder",
			mcp.Description("Path to the cloud-synced target folder (must exist)"),
			mcp.Required(),
		),
	)
}

func linkHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		save := req.GetString("save_folder", "")
		target := req.GetString("synced_folder", "")

		result, err := commands.NewLinkCommand(deps.Linker, save, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- unlink ---

func unlinkTool() mcp.Tool {
	return mcp.NewTool("unlink",
		mcp.WithDescription("Remove a save-folder link, optionally copying the synced content back into a plain folder."),
		mcp.WithString("save_folder",
			mcp.Description("Path to the linked save folder"),
			mcp.Required(),
		),
		mcp.WithBoolean("copy_back",
			mcp.Description("Copy the synced content back before finishing"),
		),
	)
}

func unlinkHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		save := req.GetString("save_folder", "")
		copyBack := req.GetBool("copy_back", false)

		result, err := commands.NewUnlinkCommand(deps.Linker, save, copyBack).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
