package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/marketing-agent/internal/types"
)

type analyticsResponse struct {
	apiResponse
	types.AnalyticsReport
}

type dashboardStatsResponse struct {
	apiResponse
	types.DashboardStats
}

// Analytics fetches the analytics report for the given time range.
func (c *Client) Analytics(ctx context.Context, timeRange types.TimeRange) (*types.AnalyticsReport, error) {
	if !timeRange.IsValid() {
		return nil, &types.ValidationError{Message: "unknown time range: " + string(timeRange)}
	}
	query := url.Values{"time_range": {string(timeRange)}}
	var resp analyticsResponse
	if err := c.do(ctx, "fetch analytics", http.MethodGet, "/api/analytics", query, nil, &resp, ""); err != nil {
		return nil, err
	}
	return &resp.AnalyticsReport, nil
}

// DashboardStats fetches the aggregate dashboard counters.
func (c *Client) DashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	var resp dashboardStatsResponse
	if err := c.do(ctx, "fetch dashboard stats", http.MethodGet, "/api/dashboard/stats", nil, nil, &resp, ""); err != nil {
		return nil, err
	}
	return &resp.DashboardStats, nil
}
