package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard overview",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	overview, err := dashboard.Fetch(cmd.Context(), client)
	if err != nil {
		return err
	}

	printer := newPrinter()
	printer.PrintDashboard(overview.Stats)
	printer.PrintClients(overview.Clients)
	printer.PrintCampaigns(overview.ActiveCampaigns())
	return nil
}
