package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gebeyahub/gebeya-go/core"
)

type setUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// ListUsers returns every account for moderation.
func (c *Client) ListUsers(ctx context.Context) ([]core.User, error) {
	var out []core.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetUserStatus activates or suspends an account.
func (c *Client) SetUserStatus(ctx context.Context, userID int, active bool) (*core.User, error) {
	out := &core.User{}
	endpoint := fmt.Sprintf("/api/admin/users/%d/status", userID)
	if err := c.do(ctx, http.MethodPut, endpoint, setUserStatusRequest{IsActive: active}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", userID), nil, nil)
}

// ListAllGroups returns every group regardless of status.
func (c *Client) ListAllGroups(ctx context.Context) ([]core.Group, error) {
	var out []core.Group
	if err := c.do(ctx, http.MethodGet, "/api/admin/groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveGroup moves a pending group to active.
func (c *Client) ApproveGroup(ctx context.Context, groupID int) (*core.Group, error) {
	out := &core.Group{}
	endpoint := fmt.Sprintf("/api/admin/groups/%d/approve", groupID)
	if err := c.do(ctx, http.MethodPut, endpoint, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, groupID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/groups/%d", groupID), nil, nil)
}

// AdminStats returns platform-wide totals for the admin console.
func (c *Client) AdminStats(ctx context.Context) (*core.AdminStats, error) {
	out := &core.AdminStats{}
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
