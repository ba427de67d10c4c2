package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" {
		t.Fatalf("base_url = %q", cfg.BaseURL)
	}
	if cfg.Mock {
		t.Fatal("mock should default to false")
	}
	if cfg.Timeout != 60*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if cfg.WSURL != "ws://localhost:8000" {
		t.Fatalf("ws_url = %q", cfg.WSURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEBEYA_BASE_URL", "https://market.example.com")
	t.Setenv("GEBEYA_MOCK", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://market.example.com" {
		t.Fatalf("base_url = %q", cfg.BaseURL)
	}
	if !cfg.Mock {
		t.Fatal("mock should be true")
	}
	if cfg.WSURL != "wss://market.example.com" {
		t.Fatalf("ws_url = %q", cfg.WSURL)
	}
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cases := []string{"", "ftp://host", "http://"}
	for _, base := range cases {
		cfg := &Config{BaseURL: base}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("Validate(%q) should fail", base)
		}
	}
}

func TestDeriveWSURL(t *testing.T) {
	cases := map[string]string{
		"http://localhost:8000":  "ws://localhost:8000",
		"https://api.example.io": "wss://api.example.io",
	}
	for in, want := range cases {
		if got := DeriveWSURL(in); got != want {
			t.Fatalf("DeriveWSURL(%q) = %q, want %q", in, got, want)
		}
	}
}
