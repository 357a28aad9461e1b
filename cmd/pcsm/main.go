package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/link"
	"pcsm/internal/adapters/pcgw"
	"pcsm/internal/adapters/resolver"
	"pcsm/internal/adapters/sqlite"
	"pcsm/internal/adapters/tui"
	"pcsm/internal/adapters/zipstore"
	"pcsm/internal/config"
	"pcsm/internal/ports"
)

func main() {
	store, err := zipstore.New(config.BackupDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pathRes, err := resolver.New(resolver.DefaultRoots())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cache ports.HintCache
	if c, err := sqlite.Open(config.CachePath()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: hint cache unavailable: %v\n", err)
	} else {
		cache = c
		defer c.Close()
	}

	app := tui.NewApp(pcgw.NewClient(""), cache, pathRes, store, link.New())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
