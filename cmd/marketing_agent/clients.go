package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/types"
)

var clientsCmd = &cobra.Command{
	Use:   "clients [client-id]",
	Short: "List onboarded clients, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClients,
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}

func runClients(cmd *cobra.Command, args []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		found, err := client.ClientByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		newPrinter().PrintClients([]types.Client{*found})
		return nil
	}

	clients, err := client.Clients(cmd.Context())
	if err != nil {
		return err
	}

	newPrinter().PrintClients(clients)
	return nil
}
