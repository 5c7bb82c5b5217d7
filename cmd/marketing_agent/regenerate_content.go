package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/store"
	"github.com/jonathan/marketing-agent/internal/types"
)

var (
	regenerateYes         bool
	regeneratePlatform    string
	regenerateContentType string
)

var regenerateContentCmd = &cobra.Command{
	Use:   "regenerate <content-id>",
	Short: "Regenerate a content item",
	Long:  `Ask the backend to regenerate one pending content item. Platform and content type default to the item's current values.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRegenerateContent,
}

func init() {
	regenerateContentCmd.Flags().BoolVarP(&regenerateYes, "yes", "y", false, "Skip the confirmation prompt")
	regenerateContentCmd.Flags().StringVar(&regeneratePlatform, "platform", "", "Target platform override")
	regenerateContentCmd.Flags().StringVar(&regenerateContentType, "type", "", "Content type override")
	contentCmd.AddCommand(regenerateContentCmd)
}

func runRegenerateContent(cmd *cobra.Command, args []string) error {
	contentID := args[0]

	client, cfg, err := newBackendClient()
	if err != nil {
		return err
	}

	contentStore := store.New(client)
	contentStore.SetFilter(cfg.ClientFilter)
	if err := contentStore.Load(cmd.Context()); err != nil {
		return err
	}

	item, ok := contentStore.Item(contentID)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrItemNotFound, contentID)
	}

	platform := item.Platform
	if regeneratePlatform != "" {
		platform = types.Platform(regeneratePlatform)
	}
	contentType := item.ContentType
	if regenerateContentType != "" {
		contentType = types.ContentType(regenerateContentType)
	}

	prompt := fmt.Sprintf("Regenerate %s for %s?", contentType, platform)
	if !regenerateYes && !confirm(os.Stdin, os.Stdout, prompt) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := contentStore.Regenerate(cmd.Context(), contentID, platform, contentType); err != nil {
		return err
	}

	fmt.Printf("Regenerated %s\n", contentID)
	return nil
}
