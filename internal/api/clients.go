package api

import (
	"context"
	"net/http"

	"github.com/jonathan/marketing-agent/internal/types"
)

type clientsResponse struct {
	apiResponse
	Count   int            `json:"count"`
	Clients []types.Client `json:"clients"`
}

type clientResponse struct {
	apiResponse
	Client types.Client `json:"client"`
}

// Clients lists all onboarded clients.
func (c *Client) Clients(ctx context.Context) ([]types.Client, error) {
	var resp clientsResponse
	if err := c.do(ctx, "fetch clients", http.MethodGet, "/api/clients", nil, nil, &resp, ""); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

// ClientByID fetches a single onboarded client.
func (c *Client) ClientByID(ctx context.Context, clientID string) (*types.Client, error) {
	var resp clientResponse
	if err := c.do(ctx, "fetch client", http.MethodGet, "/api/client/"+clientID, nil, nil, &resp, ""); err != nil {
		return nil, err
	}
	return &resp.Client, nil
}
