package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/types"
)

var analyticsRange string

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the analytics report",
	RunE:  runAnalytics,
}

func init() {
	analyticsCmd.Flags().StringVar(&analyticsRange, "range", string(types.TimeRange7d), "Time range: 7d, 30d, 90d or 1y")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	report, err := client.Analytics(cmd.Context(), types.TimeRange(analyticsRange))
	if err != nil {
		return err
	}

	newPrinter().PrintAnalytics(report)
	return nil
}
