package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketing-agent/internal/types"
)

func validDraft() types.CampaignDraft {
	return types.CampaignDraft{
		Name:      "Spring Launch",
		ClientID:  "CLIENT_0001",
		Platform:  "LinkedIn",
		Budget:    5000,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
		AdType:    "display",
	}
}

func TestClient_CreateCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaigns", r.URL.Path)

		var draft types.CampaignDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Spring Launch", draft.Name)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Campaign created",
			"data": map[string]any{
				"id":          "camp_001",
				"name":        draft.Name,
				"client_id":   draft.ClientID,
				"client_name": "Acme",
				"platform":    draft.Platform,
				"budget":      draft.Budget,
				"start_date":  draft.StartDate,
				"end_date":    draft.EndDate,
				"ad_type":     draft.AdType,
				"status":      "active",
				"impressions": 0,
				"clicks":      0,
				"ctr":         0,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithStrictValidation())
	campaign, err := client.CreateCampaign(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, "camp_001", campaign.ID)
	assert.Equal(t, types.CampaignStatusActive, campaign.Status)
	assert.Equal(t, float64(5000), campaign.Budget)
}

func TestClient_CreateCampaignRejectsInvalidDraft(t *testing.T) {
	tests := []struct {
		name  string
		mutat func(*types.CampaignDraft)
	}{
		{"missing name", func(d *types.CampaignDraft) { d.Name = "" }},
		{"missing client", func(d *types.CampaignDraft) { d.ClientID = "" }},
		{"missing platform", func(d *types.CampaignDraft) { d.Platform = "" }},
		{"missing start date", func(d *types.CampaignDraft) { d.StartDate = "" }},
		{"missing end date", func(d *types.CampaignDraft) { d.EndDate = "" }},
		{"negative budget", func(d *types.CampaignDraft) { d.Budget = -1 }},
	}

	client := NewClient("http://localhost:0")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutat(&draft)

			_, err := client.CreateCampaign(context.Background(), draft)
			var ve *types.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestClient_UpdateCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/campaigns/camp_001", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":        "camp_001",
				"name":      "Spring Launch",
				"client_id": "CLIENT_0001",
				"platform":  "LinkedIn",
				"status":    "paused",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	campaign, err := client.UpdateCampaign(context.Background(), "camp_001", validDraft())
	require.NoError(t, err)
	assert.Equal(t, types.CampaignStatusPaused, campaign.Status)
}

func TestClient_DeleteCampaignPreservesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Campaign not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteCampaign(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Campaign not found", ServerMessage(err, ""))
}

func TestClient_Campaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"campaigns": []map[string]any{
				{"id": "camp_001", "name": "A", "client_id": "CLIENT_0001", "platform": "LinkedIn", "status": "active"},
				{"id": "camp_002", "name": "B", "client_id": "CLIENT_0002", "platform": "Facebook", "status": "draft"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	campaigns, err := client.Campaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, types.CampaignStatusDraft, campaigns[1].Status)
}

func TestClient_ClientsAndClientByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clients":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"count":   1,
				"clients": []map[string]any{{"client_id": "CLIENT_0001", "company_name": "Acme"}},
			})
		case "/api/client/CLIENT_0001":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"client":  map[string]any{"client_id": "CLIENT_0001", "company_name": "Acme"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	clients, err := client.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].CompanyName)

	single, err := client.ClientByID(context.Background(), "CLIENT_0001")
	require.NoError(t, err)
	assert.Equal(t, "CLIENT_0001", single.ClientID)
}

func TestClient_Analytics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics", r.URL.Path)
		assert.Equal(t, "30d", r.URL.Query().Get("time_range"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"time_range": "30d",
			"performance_over_time": []map[string]any{
				{"date": "Mon", "views": 1200, "engagement": 450, "clicks": 320},
			},
			"platform_performance": []map[string]any{
				{"name": "LinkedIn", "value": 35, "posts": 120},
			},
			"campaign_performance": []map[string]any{
				{"name": "Campaign A", "impressions": 45000, "clicks": 3200, "conversions": 450},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	report, err := client.Analytics(context.Background(), types.TimeRange30d)
	require.NoError(t, err)
	assert.Equal(t, types.TimeRange30d, report.TimeRange)
	require.Len(t, report.PerformanceOverTime, 1)
	assert.Equal(t, 1200, report.PerformanceOverTime[0].Views)
	require.Len(t, report.PlatformPerformance, 1)
	assert.Equal(t, 35, report.PlatformPerformance[0].Value)
}

func TestClient_AnalyticsRejectsUnknownRange(t *testing.T) {
	client := NewClient("http://localhost:0")
	_, err := client.Analytics(context.Background(), "14d")

	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestClient_DashboardStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/stats", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"totalClients":    3,
			"pendingContent":  7,
			"approvedContent": 12,
			"activeCampaigns": 2,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 7, stats.PendingContent)
	assert.Equal(t, 12, stats.ApprovedContent)
	assert.Equal(t, 2, stats.ActiveCampaigns)
}
