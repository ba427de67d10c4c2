package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gebeyahub/gebeya-go/core"
)

type generateQRRequest struct {
	OrderID int `json:"order_id"`
}

type scanQRRequest struct {
	Payload string `json:"payload"`
}

// GenerateQR issues a pickup-verification code for an order.
func (c *Client) GenerateQR(ctx context.Context, orderID int) (*core.QRCode, error) {
	out := &core.QRCode{}
	if err := c.do(ctx, http.MethodPost, "/api/admin/qr/generate", generateQRRequest{OrderID: orderID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScanQR verifies an already-decoded QR payload string.
func (c *Client) ScanQR(ctx context.Context, payload string) (*core.ScanResult, error) {
	out := &core.ScanResult{}
	if err := c.do(ctx, http.MethodPost, "/api/admin/qr/scan", scanQRRequest{Payload: payload}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScanQRImage uploads a photographed code for server-side decoding and
// verification. Multipart with a single "file" field, like product images.
func (c *Client) ScanQRImage(ctx context.Context, filename string, file io.Reader) (*core.ScanResult, error) {
	out := &core.ScanResult{}
	if err := c.upload(ctx, "/api/admin/qr/scan-image", filename, file, out); err != nil {
		return nil, err
	}
	return out, nil
}

// QRHistory lists past scans.
func (c *Client) QRHistory(ctx context.Context) ([]core.ScanRecord, error) {
	var out []core.ScanRecord
	if err := c.do(ctx, http.MethodGet, "/api/admin/qr/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
