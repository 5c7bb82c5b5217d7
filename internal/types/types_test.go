package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_IsValid(t *testing.T) {
	for _, p := range Platforms() {
		assert.True(t, p.IsValid(), "platform %s should be valid", p)
	}
	assert.False(t, Platform("MySpace").IsValid())
	assert.False(t, Platform("linkedin").IsValid(), "platform values are case sensitive")
	assert.False(t, Platform("").IsValid())
}

func TestContentType_IsValid(t *testing.T) {
	for _, ct := range ContentTypes() {
		assert.True(t, ct.IsValid(), "content type %s should be valid", ct)
	}
	assert.False(t, ContentType("press_release").IsValid())
	assert.False(t, ContentType("").IsValid())
}

func TestTimeRange_IsValid(t *testing.T) {
	for _, r := range []TimeRange{TimeRange7d, TimeRange30d, TimeRange90d, TimeRange1y} {
		assert.True(t, r.IsValid(), "time range %s should be valid", r)
	}
	assert.False(t, TimeRange("14d").IsValid())
	assert.False(t, TimeRange("").IsValid())
}

func TestEditContentRequest_Validate(t *testing.T) {
	req := &EditContentRequest{Content: "Updated post body"}
	assert.NoError(t, req.Validate())

	empty := &EditContentRequest{}
	err := empty.Validate()
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "edit request invalid")
}

func TestRegenerateContentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegenerateContentRequest
		wantErr string
	}{
		{
			name: "valid request",
			req:  RegenerateContentRequest{Platform: PlatformLinkedIn, ContentType: ContentTypePost},
		},
		{
			name:    "missing platform",
			req:     RegenerateContentRequest{ContentType: ContentTypePost},
			wantErr: "regenerate request invalid",
		},
		{
			name:    "missing content type",
			req:     RegenerateContentRequest{Platform: PlatformLinkedIn},
			wantErr: "regenerate request invalid",
		},
		{
			name:    "unknown platform",
			req:     RegenerateContentRequest{Platform: "MySpace", ContentType: ContentTypePost},
			wantErr: "unknown platform",
		},
		{
			name:    "unknown content type",
			req:     RegenerateContentRequest{Platform: PlatformTwitter, ContentType: "press_release"},
			wantErr: "unknown content type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOnboardingForm_Validate(t *testing.T) {
	form := &OnboardingForm{
		CompanyName:    "Acme Corp",
		Industry:       "Manufacturing",
		BrandTone:      "professional",
		TargetAudience: "B2B procurement teams",
	}
	assert.NoError(t, form.Validate())

	missing := &OnboardingForm{CompanyName: "Acme Corp"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "onboarding form invalid")
}

func TestOnboardingForm_Fields(t *testing.T) {
	form := &OnboardingForm{
		CompanyName:     "Acme Corp",
		Industry:        "Manufacturing",
		BrandTone:       "professional",
		TargetAudience:  "B2B procurement teams",
		PrimaryChannels: []string{"LinkedIn", "Instagram"},
	}

	fields := form.Fields()
	got := map[string]string{}
	for _, f := range fields {
		got[f[0]] = f[1]
	}

	assert.Equal(t, "Acme Corp", got["company_name"])
	assert.Equal(t, "LinkedIn, Instagram", got["primary_channels"])
	_, hasImages := got["generate_images"]
	assert.False(t, hasImages, "generate_images is omitted when false")

	// Field order is part of the form contract
	assert.Equal(t, "company_name", fields[0][0])
	assert.Equal(t, "industry", fields[1][0])
}

func TestOnboardingForm_FieldsGenerateImages(t *testing.T) {
	form := &OnboardingForm{GenerateImages: true}
	fields := form.Fields()
	last := fields[len(fields)-1]
	assert.Equal(t, [2]string{"generate_images", "true"}, last)
}

func TestCampaignDraft_Validate(t *testing.T) {
	valid := CampaignDraft{
		Name:      "Summer Launch",
		ClientID:  "CLIENT_0001",
		Platform:  "LinkedIn",
		Budget:    5000,
		StartDate: "2026-06-01",
		EndDate:   "2026-08-31",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CampaignDraft)
	}{
		{name: "missing name", mutate: func(d *CampaignDraft) { d.Name = "" }},
		{name: "missing client", mutate: func(d *CampaignDraft) { d.ClientID = "" }},
		{name: "missing platform", mutate: func(d *CampaignDraft) { d.Platform = "" }},
		{name: "negative budget", mutate: func(d *CampaignDraft) { d.Budget = -1 }},
		{name: "missing start date", mutate: func(d *CampaignDraft) { d.StartDate = "" }},
		{name: "missing end date", mutate: func(d *CampaignDraft) { d.EndDate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			err := draft.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "campaign draft invalid")
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ValidationError{Message: "wrapped", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wrapped")
}
