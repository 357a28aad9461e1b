package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pcsm/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [game]",
	Short: "List backed-up games or a game's backups",
	Long: `Without arguments, list every game that has at least one backup.
With a game name, list that game's backups oldest first.

Examples:
  pcsm-cli list
  pcsm-cli list "Elden Ring"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 0 {
			result, err := commands.NewListGamesCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			for _, g := range result.Games {
				fmt.Println(g)
			}
			return nil
		}

		result, err := commands.NewListArchivesCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		for _, a := range result.Archives {
			fmt.Printf("%s  %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"), a.Path)
		}
		if len(result.Archives) == 0 {
			fmt.Printf("No backups found for %s\n", args[0])
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive>",
	Short: "Show the locations recorded in a backup archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewInspectCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Game: %s\n", result.Manifest.Game)
		for _, e := range result.Manifest.Paths {
			fmt.Printf("%-4s %s\n", e.Kind, e.Original)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
}
