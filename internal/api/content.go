package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/marketing-agent/internal/types"
)

type pendingContentResponse struct {
	apiResponse
	Count   int                 `json:"count"`
	Content []types.ContentItem `json:"content"`
}

// PendingContent lists content awaiting approval. clientID filters to one
// client; types.AllClients (or empty) lists across all clients.
func (c *Client) PendingContent(ctx context.Context, clientID string) ([]types.ContentItem, error) {
	query := url.Values{}
	if clientID != "" && clientID != types.AllClients {
		query.Set("client_id", clientID)
	}
	var resp pendingContentResponse
	if err := c.do(ctx, "fetch pending content", http.MethodGet, "/api/content/pending", query, nil, &resp, "content_list"); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// ApproveContent approves one content item for posting. The backend owns the
// approved state; callers re-fetch the pending list afterwards.
func (c *Client) ApproveContent(ctx context.Context, contentID string) error {
	var resp statusResponse
	return c.do(ctx, "approve content", http.MethodPost, "/api/content/"+contentID+"/approve", nil, nil, &resp, "")
}

// EditContent replaces the full text of one content item.
func (c *Client) EditContent(ctx context.Context, contentID, content string) error {
	req := types.EditContentRequest{Content: content}
	if err := req.Validate(); err != nil {
		return err
	}
	var resp statusResponse
	return c.do(ctx, "edit content", http.MethodPut, "/api/content/"+contentID+"/edit", nil, &req, &resp, "")
}

// DeleteContent removes one content item from the pending set.
func (c *Client) DeleteContent(ctx context.Context, contentID string) error {
	var resp statusResponse
	return c.do(ctx, "delete content", http.MethodDelete, "/api/content/"+contentID, nil, nil, &resp, "")
}

// RegenerateContent asks the backend to regenerate the body (and image, where
// applicable) of one content item for the given platform and content type.
func (c *Client) RegenerateContent(ctx context.Context, contentID string, platform types.Platform, contentType types.ContentType) error {
	req := types.RegenerateContentRequest{Platform: platform, ContentType: contentType}
	if err := req.Validate(); err != nil {
		return err
	}
	var resp statusResponse
	return c.do(ctx, "regenerate content", http.MethodPost, "/api/content/"+contentID+"/regenerate", nil, &req, &resp, "")
}
