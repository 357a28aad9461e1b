package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pcsm/internal/application/commands"
)

var backupRefresh bool

var backupCmd = &cobra.Command{
	Use:   "backup <game>",
	Short: "Archive a game's save locations into a zip backup",
	Long: `Resolve a game's save locations and archive them into a timestamped
zip under the backup directory. The archive embeds a manifest so a later
restore knows where each file belongs.

Examples:
  pcsm-cli backup "Elden Ring"
  pcsm-cli backup "Elden Ring" --refresh`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		game := args[0]

		resolveCmd := commands.NewResolveCommand(GetLocator(), GetCache(), GetResolver(), game, backupRefresh)
		resolved, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if len(resolved.Paths) == 0 {
			return fmt.Errorf("no existing save locations found for %s", game)
		}

		backupCmd := commands.NewBackupCommand(GetStore(), game, resolved.Paths)
		result, err := backupCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, f := range result.Report.Failed {
			fmt.Printf("skipped %s: %s\n", f.Path, f.Reason)
		}
		fmt.Println(result.Message)

		if c := GetCache(); c != nil {
			// Remembered for the next interactive session; ignore failures.
			_ = c.PutSetting("last_game", game)
		}
		return nil
	},
}

func init() {
	backupCmd.Flags().BoolVar(&backupRefresh, "refresh", false, "ignore cached hints and query the wiki again")
	rootCmd.AddCommand(backupCmd)
}
