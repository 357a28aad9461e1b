package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"pcsm/internal/application/commands"
)

var (
	resolveRefresh bool
	resolveCopy    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <game>",
	Short: "Find a game's save locations on this machine",
	Long: `Look up where a game keeps its saves and print the locations that
exist on this machine.

Examples:
  pcsm-cli resolve "Elden Ring"
  pcsm-cli resolve "Elden Ring" --refresh
  pcsm-cli resolve "Elden Ring" --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resolveCmd := commands.NewResolveCommand(GetLocator(), GetCache(), GetResolver(), args[0], resolveRefresh)
		result, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, p := range result.Paths {
			fmt.Printf("%-4s %s\n", p.Kind, p.Path)
		}
		fmt.Println(result.Message)

		if resolveCopy && len(result.Paths) > 0 {
			lines := make([]string, 0, len(result.Paths))
			for _, p := range result.Paths {
				lines = append(lines, p.Path)
			}
			if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println("Copied to clipboard")
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveRefresh, "refresh", false, "ignore cached hints and query the wiki again")
	resolveCmd.Flags().BoolVarP(&resolveCopy, "copy", "c", false, "copy the resolved paths to the clipboard")
	rootCmd.AddCommand(resolveCmd)
}
