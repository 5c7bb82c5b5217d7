package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/store"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Review and act on pending content",
}

var listContentClient string

var listContentCmd = &cobra.Command{
	Use:   "list",
	Short: "List content awaiting approval",
	RunE:  runListContent,
}

func init() {
	listContentCmd.Flags().StringVar(&listContentClient, "client", "", "Filter by client ID (default: all clients)")
	contentCmd.AddCommand(listContentCmd)
	rootCmd.AddCommand(contentCmd)
}

func runListContent(cmd *cobra.Command, _ []string) error {
	client, cfg, err := newBackendClient()
	if err != nil {
		return err
	}

	contentStore := store.New(client)
	filter := listContentClient
	if filter == "" {
		filter = cfg.ClientFilter
	}
	contentStore.SetFilter(filter)
	if err := contentStore.Load(cmd.Context()); err != nil {
		return err
	}

	newPrinter().PrintContentItems(contentStore.Items())
	return nil
}
