package api

import (
	"context"
	"net/http"

	"github.com/gebeyahub/gebeya-go/core"
)

// Metadata fetches the full configuration bundle.
func (c *Client) Metadata(ctx context.Context) (*core.Metadata, error) {
	out := &core.Metadata{}
	if err := c.do(ctx, http.MethodGet, "/metadata/all", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches just the category list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/metadata/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Locations fetches just the location list.
func (c *Client) Locations(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/metadata/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
