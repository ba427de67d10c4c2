package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gebeyahub/gebeya-go/core"
)

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Dashboard summarizes the supplier's book of business.
func (c *Client) Dashboard(ctx context.Context) (*core.DashboardStats, error) {
	out := &core.DashboardStats{}
	if err := c.do(ctx, http.MethodGet, "/api/supplier/dashboard", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Orders lists supplier orders, optionally narrowed by status.
func (c *Client) Orders(ctx context.Context, status string) ([]core.Order, error) {
	endpoint := "/api/supplier/orders" + queryValues(func(v url.Values) {
		if status != "" {
			v.Set("status", status)
		}
	})
	var out []core.Order
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus advances an order through fulfillment.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (*core.Order, error) {
	out := &core.Order{}
	endpoint := fmt.Sprintf("/api/supplier/orders/%d/status", orderID)
	if err := c.do(ctx, http.MethodPut, endpoint, updateOrderStatusRequest{Status: status}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoices lists the supplier's invoices.
func (c *Client) Invoices(ctx context.Context) ([]core.Invoice, error) {
	var out []core.Invoice
	if err := c.do(ctx, http.MethodGet, "/api/supplier/invoices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SupplierPayments lists settlement payouts.
func (c *Client) SupplierPayments(ctx context.Context) ([]core.SupplierPayment, error) {
	var out []core.SupplierPayment
	if err := c.do(ctx, http.MethodGet, "/api/supplier/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Notifications lists the supplier inbox.
func (c *Client) Notifications(ctx context.Context) ([]core.Notification, error) {
	var out []core.Notification
	if err := c.do(ctx, http.MethodGet, "/api/supplier/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead acknowledges one inbox entry.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/supplier/notifications/%d/read", id), nil, nil)
}

// PickupLocations lists the supplier's collection points.
func (c *Client) PickupLocations(ctx context.Context) ([]core.PickupLocation, error) {
	var out []core.PickupLocation
	if err := c.do(ctx, http.MethodGet, "/api/supplier/pickup-locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SupplierGroups lists groups backed by the current supplier.
func (c *Client) SupplierGroups(ctx context.Context) ([]core.Group, error) {
	var out []core.Group
	if err := c.do(ctx, http.MethodGet, "/api/supplier/groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
