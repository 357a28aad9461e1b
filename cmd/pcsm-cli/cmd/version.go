package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pcsm/internal/adapters/update"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version, optionally checking for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("pcsm-cli %s\n", Version)
		if !versionCheck {
			return nil
		}

		res, err := update.NewChecker("").Check(context.Background(), Version)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if res.Outdated {
			fmt.Printf("Update available: %s (%s)\n", res.Latest, res.UpdateURL)
		} else {
			fmt.Println("Up to date")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}
