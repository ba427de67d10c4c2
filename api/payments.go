package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gebeyahub/gebeya-go/core"
)

// InitializePayment opens a gateway checkout session. The caller is expected
// to send the user to CheckoutURL and poll VerifyPayment by TxRef.
func (c *Client) InitializePayment(ctx context.Context, req core.PaymentInitRequest) (*core.PaymentInit, error) {
	out := &core.PaymentInit{}
	if err := c.do(ctx, http.MethodPost, "/api/payments/initialize", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyPayment fetches the current state of a transaction by reference.
func (c *Client) VerifyPayment(ctx context.Context, txRef string) (*core.PaymentVerification, error) {
	out := &core.PaymentVerification{}
	endpoint := "/api/payments/verify/" + url.PathEscape(txRef)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PollPayment verifies the transaction at the given interval until it reaches
// a terminal status or ctx is done. The last observed verification is
// returned alongside any error. It works against any Service, so mock-mode
// polling behaves identically.
func PollPayment(ctx context.Context, s Service, txRef string, interval time.Duration) (*core.PaymentVerification, error) {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *core.PaymentVerification
	for {
		v, err := s.VerifyPayment(ctx, txRef)
		if err != nil {
			return last, err
		}
		last = v
		if v.Status.Terminal() {
			return v, nil
		}
		select {
		case <-ctx.Done():
			return last, core.NewError(core.ErrCanceled, "payment polling canceled", core.WithWrapped(ctx.Err()))
		case <-ticker.C:
		}
	}
}
