package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pcsm/internal/application/commands"
	"pcsm/internal/ports"
)

// Deps carries the adapters the tool handlers need.
type Deps struct {
	Store    ports.ArchiveStore
	Locator  ports.SaveLocator
	Cache    ports.HintCache
	Resolver ports.PathResolver
	Linker   ports.Linker
}

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(resolvePathsTool(), resolvePathsHandler(deps))
	s.AddTool(suggestGamesTool(), suggestGamesHandler(deps))
	s.AddTool(listBackupsTool(), listBackupsHandler(deps))
	s.AddTool(inspectBackupTool(), inspectBackupHandler(deps))
	s.AddTool(linkStatusTool(), linkStatusHandler(deps))
}

// --- resolve_paths ---

func resolvePathsTool() mcp.Tool {
	return mcp.NewTool("resolve_paths",
		mcp.WithDescription("Find where a game keeps its save files on this machine. Only locations that actually exist are returned."),
		mcp.WithString("game",
			mcp.Description("Game title, e.g. \"Elden Ring\""),
			mcp.Required(),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Ignore cached hints and query the wiki again"),
		),
	)
}

func resolvePathsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		game := req.GetString("game", "")
		refresh := req.GetBool("refresh", false)

		cmd := commands.NewResolveCommand(deps.Locator, deps.Cache, deps.Resolver, game, refresh)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Paths) == 0 {
			return mcp.NewToolResultText(result.Message), nil
		}
		var sb strings.Builder
		for _, p := range result.Paths {
			fmt.Fprintf(&sb, "%-4s %s\n", p.Kind, p.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- suggest_games ---

func suggestGamesTool() mcp.Tool {
	return mcp.NewTool("suggest_games",
		mcp.WithDescription("Suggest game titles matching a partial name."),
		mcp.WithString("query",
			mcp.Description("Partial game title"),
			mcp.Required(),
		),
	)
}

func suggestGamesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		titles, err := deps.Locator.Suggest(ctx, query)
		if err != nil {
			return toolError(err)
		}
		if len(titles) == 0 {
			return mcp.NewToolResultText("No matching games found."), nil
		}
		return mcp.NewToolResultText(strings.Join(titles, "\n")), nil
	}
}

// --- list_backups ---

func listBackupsTool() mcp.Tool {
	return mcp.NewTool("list_backups",
		mcp.WithDescription("List backed-up games, or a specific game's backups oldest first."),
		mcp.WithString("game",
			mcp.Description("Game title. Omit to list all games that have backups."),
		),
	)
}

func listBackupsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		game := req.GetString("game", "")

		if game == "" {
			result, err := commands.NewListGamesCommand(deps.Store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			if len(result.Games) == 0 {
				return mcp.NewToolResultText("No backups yet."), nil
			}
			return mcp.NewToolResultText(strings.Join(result.Games, "\n")), nil
		}

		result, err := commands.NewListArchivesCommand(deps.Store, game).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Archives) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No backups found for %s.", game)), nil
		}
		var sb strings.Builder
		for _, a := range result.Archives {
			fmt.Fprintf(&sb, "%s  %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"), a.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- inspect_backup ---

func inspectBackupTool() mcp.Tool {
	return mcp.NewTool("inspect_backup",
		mcp.WithDescription("Show the save locations recorded inside a backup archive without extracting it."),
		mcp.WithString("archive",
			mcp.Description("Path to the backup zip"),
			mcp.Required(),
		),
	)
}

func inspectBackupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		archive := req.GetString("archive", "")

		result, err := commands.NewInspectCommand(deps.Store, archive).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Game: %s\n", result.Manifest.Game)
		for _, e := range result.Manifest.Paths {
			fmt.Fprintf(&sb, "%-4s %s\n", e.Kind, e.Original)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- link_status ---

func linkStatusTool() mcp.Tool {
	return mcp.NewTool("link_status",
		mcp.WithDescription("Report whether a save folder is linked into a synced folder, and where the link points."),
		mcp.WithString("save_folder",
			mcp.Description("Path to the save folder"),
			mcp.Required(),
		),
	)
}

func linkStatusHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		save := req.GetString("save_folder", "")

		result, err := commands.NewLinkStatusCommand(deps.Linker, save).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if !result.Linked {
			return mcp.NewToolResultText(fmt.Sprintf("%s is not linked.", result.SavePath)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s -> %s", result.SavePath, result.Target)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
