package types

import (
	"github.com/go-playground/validator/v10"
)

// CampaignStatus is the lifecycle state of an ad campaign.
type CampaignStatus string

// Campaign statuses assigned by the backend.
const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents an ad campaign as returned by the backend, including
// server-derived metrics.
type Campaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ClientID       string         `json:"client_id"`
	ClientName     string         `json:"client_name,omitempty"`
	Platform       string         `json:"platform"`
	Budget         float64        `json:"budget"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	TargetAudience string         `json:"target_audience,omitempty"`
	AdType         string         `json:"ad_type,omitempty"`
	Status         CampaignStatus `json:"status"`
	Impressions    int            `json:"impressions"`
	Clicks         int            `json:"clicks"`
	CTR            float64        `json:"ctr"`
	CreatedAt      string         `json:"created_at,omitempty"`
}

// CampaignDraft is the client-side payload for creating or updating a campaign.
// Metrics and status are server-owned and never submitted.
type CampaignDraft struct {
	Name           string  `json:"name" validate:"required"`
	ClientID       string  `json:"client_id" validate:"required"`
	Platform       string  `json:"platform" validate:"required"`
	Budget         float64 `json:"budget" validate:"gte=0"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	TargetAudience string  `json:"target_audience,omitempty"`
	AdType         string  `json:"ad_type,omitempty"`
}

// Validate validates the CampaignDraft using the validator.
func (d *CampaignDraft) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return &ValidationError{Message: "campaign draft invalid", Cause: err}
	}
	return nil
}
