package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Client represents an onboarded client as returned by the backend.
// Read-only from this side; used to populate the pending-content filter.
type Client struct {
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AllClients is the filter value selecting content across every client.
const AllClients = "all"

// OnboardingForm holds the text fields of the client onboarding submission.
// File attachments are passed separately; see api.Onboard.
type OnboardingForm struct {
	CompanyName        string   `json:"company_name" validate:"required"`
	Industry           string   `json:"industry" validate:"required"`
	BrandTone          string   `json:"brand_tone" validate:"required"`
	TargetAudience     string   `json:"target_audience" validate:"required"`
	WebsiteURL         string   `json:"website_url,omitempty"`
	SocialMediaHandles string   `json:"social_media_handles,omitempty"`
	MarketingGoals     string   `json:"marketing_goals,omitempty"`
	ContentPreferences string   `json:"content_preferences,omitempty"`
	BudgetRange        string   `json:"budget_range,omitempty"`
	PastExamples       string   `json:"past_examples,omitempty"`
	Texts              string   `json:"texts,omitempty"`
	PrimaryChannels    []string `json:"primary_channels,omitempty"`
	GenerateImages     bool     `json:"generate_images,omitempty"`
}

// Validate validates the OnboardingForm using the validator.
func (f *OnboardingForm) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return &ValidationError{Message: "onboarding form invalid", Cause: err}
	}
	return nil
}

// Fields returns the form as ordered multipart field name/value pairs.
// PrimaryChannels is joined into a single comma-separated field, matching
// the backend's form contract.
func (f *OnboardingForm) Fields() [][2]string {
	fields := [][2]string{
		{"company_name", f.CompanyName},
		{"industry", f.Industry},
		{"brand_tone", f.BrandTone},
		{"target_audience", f.TargetAudience},
		{"website_url", f.WebsiteURL},
		{"social_media_handles", f.SocialMediaHandles},
		{"marketing_goals", f.MarketingGoals},
		{"content_preferences", f.ContentPreferences},
		{"budget_range", f.BudgetRange},
		{"past_examples", f.PastExamples},
		{"texts", f.Texts},
		{"primary_channels", strings.Join(f.PrimaryChannels, ", ")},
	}
	if f.GenerateImages {
		fields = append(fields, [2]string{"generate_images", "true"})
	}
	return fields
}

// OnboardingResult is the data payload returned on successful onboarding.
type OnboardingResult struct {
	CompanyName string `json:"company_name"`
	ClientID    string `json:"client_id"`
}

// FileUpload is a named attachment for the onboarding submission.
type FileUpload struct {
	Filename string
	Content  []byte
}
