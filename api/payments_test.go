package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gebeyahub/gebeya-go/core"
)

func TestVerifyPaymentEscapesTxRef(t *testing.T) {
	var gotPath string
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		return jsonResponse(http.StatusOK, `{"tx_ref":"tx-1","status":"pending"}`), nil
	})

	v, err := client.VerifyPayment(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("VerifyPayment error: %v", err)
	}
	if gotPath != "/api/payments/verify/tx-1" {
		t.Fatalf("path = %q", gotPath)
	}
	if v.Status != core.PaymentPending {
		t.Fatalf("status = %q, want pending", v.Status)
	}
}

func TestPollPaymentStopsOnTerminalStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) < 3 {
			return jsonResponse(http.StatusOK, `{"tx_ref":"tx-1","status":"pending"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"tx_ref":"tx-1","status":"successful"}`), nil
	})

	v, err := PollPayment(context.Background(), client, "tx-1", time.Millisecond)
	if err != nil {
		t.Fatalf("PollPayment error: %v", err)
	}
	if v.Status != core.PaymentSuccessful {
		t.Fatalf("status = %q, want successful", v.Status)
	}
	if calls.Load() != 3 {
		t.Fatalf("verify called %d times, want 3", calls.Load())
	}
}

func TestPollPaymentHonorsCancellation(t *testing.T) {
	client := newTestClient(core.NewMemorySession(), func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"tx_ref":"tx-1","status":"pending"}`), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	last, err := PollPayment(ctx, client, "tx-1", time.Hour)
	if !core.IsCanceled(err) {
		t.Fatalf("expected canceled error, got %v", err)
	}
	if last == nil || last.Status != core.PaymentPending {
		t.Fatalf("last observed verification should be returned, got %+v", last)
	}
}
