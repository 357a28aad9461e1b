package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pcsm/internal/adapters/link"
	"pcsm/internal/adapters/pcgw"
	"pcsm/internal/adapters/resolver"
	"pcsm/internal/adapters/sqlite"
	"pcsm/internal/adapters/zipstore"
	"pcsm/internal/config"
	"pcsm/internal/ports"
)

// Version is stamped at build time.
var Version = "dev"

var (
	backupDir string
	cachePath string
	noCache   bool

	store   ports.ArchiveStore
	locator ports.SaveLocator
	cache   ports.HintCache
	pathRes ports.PathResolver
	linker  ports.Linker
)

var rootCmd = &cobra.Command{
	Use:   "pcsm-cli",
	Short: "CLI for backing up and restoring PC game saves",
	Long: `pcsm-cli finds where games keep their save files, archives them into
timestamped zip backups, restores them, and can link a save folder into a
cloud-synced folder.

Save locations come from PCGamingWiki and are cached locally; only
locations that actually exist on this machine are used.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		s, err := zipstore.New(backupDir)
		if err != nil {
			return fmt.Errorf("backup directory: %w", err)
		}
		store = s

		r, err := resolver.New(resolver.DefaultRoots())
		if err != nil {
			return fmt.Errorf("path resolver: %w", err)
		}
		pathRes = r

		locator = pcgw.NewClient("")
		linker = link.New()

		if !noCache {
			c, err := sqlite.Open(cachePath)
			if err != nil {
				// A broken cache degrades lookups, it does not block them.
				fmt.Fprintf(os.Stderr, "warning: hint cache unavailable: %v\n", err)
			} else {
				cache = c
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cache != nil {
			cache.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backupDir, "backup-dir", "b", config.BackupDir(), "directory that receives backup archives")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", config.CachePath(), "path to the hint cache database")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the hint cache")
}

// GetStore returns the initialized archive store
func GetStore() ports.ArchiveStore { return store }

// GetLocator returns the initialized save locator
func GetLocator() ports.SaveLocator { return locator }

// GetCache returns the hint cache, nil when disabled or unavailable
func GetCache() ports.HintCache { return cache }

// GetResolver returns the initialized path resolver
func GetResolver() ports.PathResolver { return pathRes }

// GetLinker returns the initialized link manager
func GetLinker() ports.Linker { return linker }
