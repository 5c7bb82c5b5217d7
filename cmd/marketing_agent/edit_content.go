package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/store"
)

var editContentText string

var editContentCmd = &cobra.Command{
	Use:   "edit <content-id>",
	Short: "Replace the text of a content item",
	Long:  `Replace the full text of one pending content item. The new text comes from --text, or from stdin when --text is omitted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEditContent,
}

func init() {
	editContentCmd.Flags().StringVar(&editContentText, "text", "", "Replacement text (reads stdin when omitted)")
	contentCmd.AddCommand(editContentCmd)
}

func runEditContent(cmd *cobra.Command, args []string) error {
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

	if _, err := contentStore.StartEdit(contentID); err != nil {
		return err
	}

	text := editContentText
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read replacement text from stdin: %w", err)
		}
		text = string(data)
	}
	contentStore.SetEditText(text)

	if err := contentStore.SaveEdit(cmd.Context()); err != nil {
		contentStore.CancelEdit()
		return err
	}

	fmt.Printf("Updated %s\n", contentID)
	return nil
}
