package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gebeyahub/gebeya-go/core"
)

// CreateGroupRequest opens a new group buy.
type CreateGroupRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category"`
	Location       string  `json:"location,omitempty"`
	Price          float64 `json:"price"`
	Unit           string  `json:"unit,omitempty"`
	TargetQuantity int     `json:"target_quantity,omitempty"`
	MaxMembers     int     `json:"max_members,omitempty"`
	ProductID      *int    `json:"product_id,omitempty"`
	Deadline       string  `json:"deadline,omitempty"`
}

// ListGroups returns groups matching the filter.
func (c *Client) ListGroups(ctx context.Context, filter core.GroupFilter) ([]core.Group, error) {
	endpoint := "/api/groups" + queryValues(func(v url.Values) {
		if filter.Query != "" {
			v.Set("q", filter.Query)
		}
		if filter.Category != "" {
			v.Set("category", filter.Category)
		}
		if filter.Location != "" {
			v.Set("location", filter.Location)
		}
		if filter.Status != "" {
			v.Set("status", filter.Status)
		}
		if filter.Limit > 0 {
			v.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			v.Set("offset", strconv.Itoa(filter.Offset))
		}
	})
	var out []core.Group
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGroup fetches one group by id.
func (c *Client) GetGroup(ctx context.Context, id int) (*core.Group, error) {
	out := &core.Group{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGroup opens a new group buy.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*core.Group, error) {
	out := &core.Group{}
	if err := c.do(ctx, http.MethodPost, "/api/groups", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// JoinGroup commits the current user to a group buy and returns the payment
// handle for the committed amount.
func (c *Client) JoinGroup(ctx context.Context, id int, req core.JoinGroupRequest) (*core.JoinGroupResponse, error) {
	out := &core.JoinGroupResponse{}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/join", id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveGroup withdraws the current user from a group buy.
func (c *Client) LeaveGroup(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/leave", id), nil, nil)
}
