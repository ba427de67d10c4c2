package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gebeyahub/gebeya-go/core"
)

func TestLoginStoresToken(t *testing.T) {
	session := core.NewMemorySession()

	var captured map[string]any
	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"access_token":"tok123","is_admin":false}`), nil
	})

	auth, err := client.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if auth.IsAdmin {
		t.Fatal("is_admin should be false")
	}
	token, ok := session.Token()
	if !ok || token != "tok123" {
		t.Fatalf("session token = %q ok=%v, want tok123", token, ok)
	}
	if captured["email"] != "a@b.com" {
		t.Fatalf("email not sent: %v", captured)
	}
}

func TestRegisterStoresToken(t *testing.T) {
	session := core.NewMemorySession()
	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"access_token":"fresh-tok","user_type":"trader"}`), nil
	})

	if _, err := client.Register(context.Background(), RegisterRequest{Email: "new@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if token, _ := session.Token(); token != "fresh-tok" {
		t.Fatalf("session token = %q, want fresh-tok", token)
	}
}

func TestLogoutClearsSessionEvenOnServerFailure(t *testing.T) {
	session := core.NewMemorySession()
	session.Set("tok-abc")

	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"detail":"boom"}`), nil
	})

	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout should be best effort, got %v", err)
	}
	if _, ok := session.Token(); ok {
		t.Fatal("session token should be cleared after logout")
	}
}

func TestFailedLoginLeavesSessionEmpty(t *testing.T) {
	session := core.NewMemorySession()
	client := newTestClient(session, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"detail":"invalid credentials"}`), nil
	})

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	if !core.IsBadRequest(err) {
		t.Fatalf("expected bad request error, got %v", err)
	}
	if _, ok := session.Token(); ok {
		t.Fatal("no token should be stored on failed login")
	}
}
