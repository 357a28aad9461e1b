package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pcsm/internal/adapters/link"
	mcpadapter "pcsm/internal/adapters/mcp"
	"pcsm/internal/adapters/pcgw"
	"pcsm/internal/adapters/resolver"
	"pcsm/internal/adapters/sqlite"
	"pcsm/internal/adapters/zipstore"
	"pcsm/internal/config"
)

func main() {
	backupFlag := flag.String("backup-dir", config.BackupDir(), "directory that receives backup archives")
	cacheFlag := flag.String("cache", config.CachePath(), "path to the hint cache database")
	flag.Parse()

	store, err := zipstore.New(*backupFlag)
	if err != nil {
		log.Fatalf("pcsm-mcp: %v", err)
	}
	pathRes, err := resolver.New(resolver.DefaultRoots())
	if err != nil {
		log.Fatalf("pcsm-mcp: %v", err)
	}

	deps := mcpadapter.Deps{
		Store:    store,
		Locator:  pcgw.NewClient(""),
		Resolver: pathRes,
		Linker:   link.New(),
	}
	if cache, err := sqlite.Open(*cacheFlag); err != nil {
		fmt.Fprintf(os.Stderr, "warning: hint cache unavailable: %v\n", err)
	} else {
		deps.Cache = cache
		defer cache.Close()
	}

	mcpServer := server.NewMCPServer(
		"pcsm-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pcsm-mcp: %v", err)
	}
}
