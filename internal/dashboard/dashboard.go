// Package dashboard aggregates the backend's summary views for the CLI
// dashboard screen.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/marketing-agent/internal/types"
)

// API is the slice of the backend client the dashboard depends on.
type API interface {
	DashboardStats(ctx context.Context) (*types.DashboardStats, error)
	Clients(ctx context.Context) ([]types.Client, error)
	Campaigns(ctx context.Context) ([]types.Campaign, error)
}

// Overview is the assembled dashboard view.
type Overview struct {
	Stats     types.DashboardStats
	Clients   []types.Client
	Campaigns []types.Campaign
}

// Fetch loads the dashboard counters, client list and campaign list
// concurrently. Any single failure fails the whole fetch; the dashboard has
// no partial render.
func Fetch(ctx context.Context, api API) (*Overview, error) {
	var overview Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := api.DashboardStats(ctx)
		if err != nil {
			return err
		}
		overview.Stats = *stats
		return nil
	})
	g.Go(func() error {
		clients, err := api.Clients(ctx)
		if err != nil {
			return err
		}
		overview.Clients = clients
		return nil
	})
	g.Go(func() error {
		campaigns, err := api.Campaigns(ctx)
		if err != nil {
			return err
		}
		overview.Campaigns = campaigns
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// ActiveCampaigns filters the overview's campaigns to those currently active.
func (o *Overview) ActiveCampaigns() []types.Campaign {
	var active []types.Campaign
	for _, campaign := range o.Campaigns {
		if campaign.Status == types.CampaignStatusActive {
			active = append(active, campaign)
		}
	}
	return active
}
