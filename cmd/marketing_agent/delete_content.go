package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/store"
)

var deleteContentYes bool

var deleteContentCmd = &cobra.Command{
	Use:   "delete <content-id>",
	Short: "Delete a content item",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteContent,
}

func init() {
	deleteContentCmd.Flags().BoolVarP(&deleteContentYes, "yes", "y", false, "Skip the confirmation prompt")
	contentCmd.AddCommand(deleteContentCmd)
}

func runDeleteContent(cmd *cobra.Command, args []string) error {
	contentID := args[0]

	if !deleteContentYes && !confirm(os.Stdin, os.Stdout, "Are you sure you want to delete this content?") {
		fmt.Println("Aborted.")
		return nil
	}

	client, cfg, err := newBackendClient()
	if err != nil {
		return err
	}

	contentStore := store.New(client)
	contentStore.SetFilter(cfg.ClientFilter)
	if err := contentStore.Load(cmd.Context()); err != nil {
		return err
	}

	if err := contentStore.Delete(cmd.Context(), contentID); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", contentID)
	return nil
}
