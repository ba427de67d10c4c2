package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gebeyahub/gebeya-go/core"
)

// Recommendations returns ML-scored group suggestions for the current user.
func (c *Client) Recommendations(ctx context.Context, limit int) ([]core.Recommendation, error) {
	endpoint := "/api/ml/recommendations" + queryValues(func(v url.Values) {
		if limit > 0 {
			v.Set("limit", strconv.Itoa(limit))
		}
	})
	var out []core.Recommendation
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RetrainModel kicks off a recommendation-model training run. Progress is
// streamed separately over the websocket channel.
func (c *Client) RetrainModel(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/admin/ml/retrain", nil, nil)
}

// ModelStatus reports the current model lifecycle state.
func (c *Client) ModelStatus(ctx context.Context) (*core.MLStatus, error) {
	out := &core.MLStatus{}
	if err := c.do(ctx, http.MethodGet, "/api/admin/ml/status", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
