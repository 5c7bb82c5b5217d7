package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/types"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Manage ad campaigns",
}

var campaignDraft types.CampaignDraft

var listCampaignsCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE:  runListCampaigns,
}

var createCampaignCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a campaign",
	RunE:  runCreateCampaign,
}

var updateCampaignCmd = &cobra.Command{
	Use:   "update <campaign-id>",
	Short: "Update a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateCampaign,
}

var deleteCampaignYes bool

var deleteCampaignCmd = &cobra.Command{
	Use:   "delete <campaign-id>",
	Short: "Delete a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteCampaign,
}

func init() {
	for _, cmd := range []*cobra.Command{createCampaignCmd, updateCampaignCmd} {
		cmd.Flags().StringVar(&campaignDraft.Name, "name", "", "Campaign name (required)")
		cmd.Flags().StringVar(&campaignDraft.ClientID, "client", "", "Client ID (required)")
		cmd.Flags().StringVar(&campaignDraft.Platform, "platform", "", "Ad platform (required)")
		cmd.Flags().Float64Var(&campaignDraft.Budget, "budget", 0, "Budget in dollars")
		cmd.Flags().StringVar(&campaignDraft.StartDate, "start", "", "Start date, YYYY-MM-DD (required)")
		cmd.Flags().StringVar(&campaignDraft.EndDate, "end", "", "End date, YYYY-MM-DD (required)")
		cmd.Flags().StringVar(&campaignDraft.TargetAudience, "audience", "", "Target audience description")
		cmd.Flags().StringVar(&campaignDraft.AdType, "ad-type", "display", "Ad type")
	}
	deleteCampaignCmd.Flags().BoolVarP(&deleteCampaignYes, "yes", "y", false, "Skip the confirmation prompt")

	campaignsCmd.AddCommand(listCampaignsCmd)
	campaignsCmd.AddCommand(createCampaignCmd)
	campaignsCmd.AddCommand(updateCampaignCmd)
	campaignsCmd.AddCommand(deleteCampaignCmd)
	rootCmd.AddCommand(campaignsCmd)
}

func runListCampaigns(cmd *cobra.Command, _ []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	campaigns, err := client.Campaigns(cmd.Context())
	if err != nil {
		return err
	}

	newPrinter().PrintCampaigns(campaigns)
	return nil
}

func runCreateCampaign(cmd *cobra.Command, _ []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	campaign, err := client.CreateCampaign(cmd.Context(), campaignDraft)
	if err != nil {
		return err
	}

	fmt.Printf("Created campaign %s (%s)\n", campaign.Name, campaign.ID)
	return nil
}

func runUpdateCampaign(cmd *cobra.Command, args []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	campaign, err := client.UpdateCampaign(cmd.Context(), args[0], campaignDraft)
	if err != nil {
		return err
	}

	fmt.Printf("Updated campaign %s (%s)\n", campaign.Name, campaign.ID)
	return nil
}

func runDeleteCampaign(cmd *cobra.Command, args []string) error {
	if !deleteCampaignYes && !confirm(os.Stdin, os.Stdout, "Are you sure you want to delete this campaign?") {
		fmt.Println("Aborted.")
		return nil
	}

	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	if err := client.DeleteCampaign(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted campaign %s\n", args[0])
	return nil
}
