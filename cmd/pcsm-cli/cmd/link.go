package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pcsm/internal/application/commands"
)

var linkCmd = &cobra.Command{
	Use:   "link <save-folder> <synced-folder>",
	Short: "Link a save folder into a cloud-synced folder",
	Long: `Move a save folder's content into a synced folder and replace the
save folder with a link pointing there, so the game keeps writing to the
same path while the files live in the synced folder. The original folder
is kept next to the link with a "_backup" suffix.

Examples:
  pcsm-cli link "C:\Users\me\AppData\Roaming\EldenRing" "C:\Users\me\OneDrive\Saves\EldenRing"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewLinkCommand(GetLinker(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var unlinkCopyBack bool

var unlinkCmd = &cobra.Command{
	Use:   "unlink <save-folder>",
	Short: "Remove a save-folder link",
	Long: `Remove the link at a save folder. With --copy-back, the synced
content is copied back so the folder becomes a plain local folder again.

Examples:
  pcsm-cli unlink "C:\Users\me\AppData\Roaming\EldenRing" --copy-back`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewUnlinkCommand(GetLinker(), args[0], unlinkCopyBack).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var linkStatusCmd = &cobra.Command{
	Use:   "link-status <save-folder>",
	Short: "Show whether a save folder is linked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewLinkStatusCommand(GetLinker(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if result.Linked {
			fmt.Printf("%s -> %s\n", result.SavePath, result.Target)
		} else {
			fmt.Printf("%s is not linked\n", result.SavePath)
		}
		return nil
	},
}

func init() {
	unlinkCmd.Flags().BoolVar(&unlinkCopyBack, "copy-back", false, "copy the synced content back into a plain folder")
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(linkStatusCmd)
}
