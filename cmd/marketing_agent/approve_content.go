package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/api"
	"github.com/jonathan/marketing-agent/internal/notify"
	"github.com/jonathan/marketing-agent/internal/store"
	"github.com/jonathan/marketing-agent/internal/workflow"
)

var approveContentCmd = &cobra.Command{
	Use:   "approve <content-id>",
	Short: "Approve a content item for posting",
	Long:  `Approve one pending content item. The workflow banner advances through approval and posting, and completes only once the backend confirms the post.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runApproveContent,
}

func init() {
	contentCmd.AddCommand(approveContentCmd)
}

func runApproveContent(cmd *cobra.Command, args []string) error {
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
	if _, ok := contentStore.Item(contentID); !ok {
		return fmt.Errorf("%w: %s", store.ErrItemNotFound, contentID)
	}

	printer := newPrinter()
	notifications := notify.NewCenter()
	controller := workflow.NewController(
		workflow.WithCallTimeout(cfg.Timeout()),
		workflow.WithTransitionHook(func(state workflow.State) {
			if cfg.Verbose {
				printer.PrintWorkflow(state)
			}
		}),
	)

	runErr := controller.Run(cmd.Context(), contentID, func(ctx context.Context) error {
		return contentStore.Approve(ctx, contentID)
	})
	if runErr != nil {
		notifications.Error(api.ServerMessage(runErr, "Failed to approve content"))
		printNotifications(notifications)
		return runErr
	}

	notifications.Success("Content approved and posted")
	printNotifications(notifications)
	printer.PrintWorkflow(controller.State())
	printer.PrintContentItems(contentStore.Items())
	return nil
}

func printNotifications(center *notify.Center) {
	for _, n := range center.Active() {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	}
}
