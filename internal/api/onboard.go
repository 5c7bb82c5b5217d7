package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/marketing-agent/internal/types"
)

type onboardResponse struct {
	apiResponse
	Data types.OnboardingResult `json:"data"`
}

// Onboard submits the client onboarding form as a multipart request. Images
// and videos are attached under repeated "images" and "videos" parts; empty
// slices produce no file parts for that field.
func (c *Client) Onboard(ctx context.Context, form types.OnboardingForm, images, videos []types.FileUpload) (*types.OnboardingResult, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := encodeOnboardingForm(form, images, videos)
	if err != nil {
		return nil, fmt.Errorf("onboard client: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/client/onboard", body)
	if err != nil {
		return nil, fmt.Errorf("onboard client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var resp onboardResponse
	if err := c.send(req, "onboard client", &resp, "onboard_result"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// encodeOnboardingForm builds the multipart body. Field order matches the
// form contract; the part count is exactly len(fields)+len(images)+len(videos).
func encodeOnboardingForm(form types.OnboardingForm, images, videos []types.FileUpload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range form.Fields() {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", field[0], err)
		}
	}

	for _, upload := range images {
		part, err := writer.CreateFormFile("images", upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(upload.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write image %s: %w", upload.Filename, err)
		}
	}

	for _, upload := range videos {
		part, err := writer.CreateFormFile("videos", upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create video part: %w", err)
		}
		if _, err := part.Write(upload.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write video %s: %w", upload.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
