package api

import (
	"context"
	"net/http"

	"github.com/gebeyahub/gebeya-go/core"
	"go.uber.org/zap"
)

// LoginRequest carries credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a trader account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// RegisterSupplierRequest creates a supplier account.
type RegisterSupplierRequest struct {
	RegisterRequest
	BusinessName    string `json:"business_name"`
	BusinessLicense string `json:"business_license,omitempty"`
}

// UpdateProfileRequest mutates the current user's profile.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*core.AuthResponse, error) {
	out := &core.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, out); err != nil {
		return nil, err
	}
	c.adoptSession(out)
	return out, nil
}

// Register creates a trader account and stores the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*core.AuthResponse, error) {
	out := &core.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, out); err != nil {
		return nil, err
	}
	c.adoptSession(out)
	return out, nil
}

// RegisterSupplier creates a supplier account and stores the returned token.
func (c *Client) RegisterSupplier(ctx context.Context, req RegisterSupplierRequest) (*core.AuthResponse, error) {
	out := &core.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register-supplier", req, out); err != nil {
		return nil, err
	}
	c.adoptSession(out)
	return out, nil
}

// Logout notifies the server best effort, then clears the local session
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil && !core.IsUnauthorized(err) {
		c.logger.Warn("server logout failed, clearing local session anyway", zap.Error(err))
	}
	c.session.Clear()
	return nil
}

// Profile fetches the current user.
func (c *Client) Profile(ctx context.Context) (*core.User, error) {
	out := &core.User{}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile mutates the current user.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*core.User, error) {
	out := &core.User{}
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/change-password",
		changePasswordRequest{CurrentPassword: current, NewPassword: next}, nil)
}

func (c *Client) adoptSession(auth *core.AuthResponse) {
	if auth == nil || auth.AccessToken == "" {
		return
	}
	c.session.Set(auth.AccessToken)
	if fs, ok := c.session.(*core.FileSession); ok && auth.UserType != "" {
		fs.SetUserType(auth.UserType)
	}
}
