// Package types provides type definitions for structured data used throughout the marketing-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Platform identifies the social or publishing channel a piece of content targets.
type Platform string

// Supported publishing platforms.
const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTwitter   Platform = "Twitter"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformReddit    Platform = "Reddit"
	PlatformEmail     Platform = "Email"
	PlatformWebsite   Platform = "Website"
	PlatformYouTube   Platform = "YouTube"
)

// Platforms returns all supported platforms in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformLinkedIn,
		PlatformTwitter,
		PlatformInstagram,
		PlatformFacebook,
		PlatformReddit,
		PlatformEmail,
		PlatformWebsite,
		PlatformYouTube,
	}
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// ContentType identifies the kind of marketing content generated for a platform.
type ContentType string

// Supported content types.
const (
	ContentTypePost        ContentType = "post"
	ContentTypeBlog        ContentType = "blog"
	ContentTypeNewsletter  ContentType = "newsletter"
	ContentTypeAdCopy      ContentType = "ad_copy"
	ContentTypeVideoScript ContentType = "video_script"
)

// ContentTypes returns all supported content types.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypePost,
		ContentTypeBlog,
		ContentTypeNewsletter,
		ContentTypeAdCopy,
		ContentTypeVideoScript,
	}
}

// IsValid reports whether t is one of the supported content types.
func (t ContentType) IsValid() bool {
	for _, known := range ContentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ContentItem represents one AI-generated piece of marketing content awaiting approval.
// Items are created and owned by the backend; the client only reads them and requests
// mutations through the API.
type ContentItem struct {
	ID             string      `json:"id"`
	ClientID       string      `json:"client_id"`
	ClientName     string      `json:"client_name,omitempty"`
	Platform       Platform    `json:"platform"`
	ContentType    ContentType `json:"content_type"`
	Content        string      `json:"content"`
	CreatedAt      string      `json:"created_at"`
	UploadedImages []string    `json:"uploaded_images,omitempty"`
	GeneratedImage string      `json:"generated_image,omitempty"`
}

// EditContentRequest is the body for PUT /api/content/{id}/edit.
type EditContentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Validate validates the EditContentRequest using the validator.
func (r *EditContentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: "edit request invalid", Cause: err}
	}
	return nil
}

// RegenerateContentRequest is the body for POST /api/content/{id}/regenerate.
type RegenerateContentRequest struct {
	Platform    Platform    `json:"platform" validate:"required"`
	ContentType ContentType `json:"content_type" validate:"required"`
}

// Validate validates the RegenerateContentRequest using the validator.
func (r *RegenerateContentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: "regenerate request invalid", Cause: err}
	}
	if !r.Platform.IsValid() {
		return &ValidationError{Message: "unknown platform: " + string(r.Platform)}
	}
	if !r.ContentType.IsValid() {
		return &ValidationError{Message: "unknown content type: " + string(r.ContentType)}
	}
	return nil
}
