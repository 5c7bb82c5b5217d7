package api

import (
	"context"
	"net/http"

	"github.com/jonathan/marketing-agent/internal/types"
)

type campaignsResponse struct {
	apiResponse
	Campaigns []types.Campaign `json:"campaigns"`
}

type campaignResponse struct {
	apiResponse
	Data types.Campaign `json:"data"`
}

// Campaigns lists all campaigns.
func (c *Client) Campaigns(ctx context.Context) ([]types.Campaign, error) {
	var resp campaignsResponse
	if err := c.do(ctx, "fetch campaigns", http.MethodGet, "/api/campaigns", nil, nil, &resp, ""); err != nil {
		return nil, err
	}
	return resp.Campaigns, nil
}

// CreateCampaign creates a campaign from a validated draft and returns the
// server-assembled campaign, including its assigned ID and initial metrics.
func (c *Client) CreateCampaign(ctx context.Context, draft types.CampaignDraft) (*types.Campaign, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	var resp campaignResponse
	if err := c.do(ctx, "create campaign", http.MethodPost, "/api/campaigns", nil, &draft, &resp, "campaign"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateCampaign updates an existing campaign and returns the server's view
// of it after the update.
func (c *Client) UpdateCampaign(ctx context.Context, campaignID string, draft types.CampaignDraft) (*types.Campaign, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	var resp campaignResponse
	if err := c.do(ctx, "update campaign", http.MethodPut, "/api/campaigns/"+campaignID, nil, &draft, &resp, "campaign"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID string) error {
	var resp statusResponse
	return c.do(ctx, "delete campaign", http.MethodDelete, "/api/campaigns/"+campaignID, nil, nil, &resp, "")
}
