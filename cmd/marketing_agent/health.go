package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend reachability",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client, cfg, err := newBackendClient()
	if err != nil {
		return err
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		if api.IsUnreachable(err) {
			return fmt.Errorf("backend unreachable at %s: %w", cfg.BackendURL, err)
		}
		return err
	}

	fmt.Printf("Backend %s: %s\n", cfg.BackendURL, status.Status)
	return nil
}
