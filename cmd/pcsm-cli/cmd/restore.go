package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pcsm/internal/application/commands"
)

var restoreYes bool

var restoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Restore a backup archive to its original locations",
	Long: `Extract a backup archive back to the locations recorded in its
manifest. When existing files would be overwritten, all conflicts are
listed and the restore proceeds only after a single confirmation that
covers every one of them.

Examples:
  pcsm-cli restore ~/GameSaveBackups/Elden_Ring/Elden_Ring_20240115_120000.zip
  pcsm-cli restore backup.zip --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		archive := args[0]

		result, err := commands.NewRestoreCommand(GetStore(), archive, restoreYes).Execute(ctx)
		if err != nil {
			return err
		}

		if result.Report.NeedsConfirmation() {
			fmt.Printf("The following %d file(s) already exist:\n", len(result.Report.Conflicts))
			for _, c := range result.Report.Conflicts {
				fmt.Printf("  %s\n", c)
			}
			if !confirm("Overwrite all of them?") {
				fmt.Println("Restore cancelled; nothing was written")
				return nil
			}
			result, err = commands.NewRestoreCommand(GetStore(), archive, true).Execute(ctx)
			if err != nil {
				return err
			}
		}

		for _, f := range result.Report.Failed {
			fmt.Printf("failed %s: %s\n", f.Path, f.Reason)
		}
		fmt.Println(result.Message)
		return nil
	},
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "overwrite existing files without asking")
	rootCmd.AddCommand(restoreCmd)
}
