package gebeya

import (
	"net/http"
	"time"

	"github.com/gebeyahub/gebeya-go/config"
	"github.com/gebeyahub/gebeya-go/core"
	"github.com/gebeyahub/gebeya-go/mock"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientSettings)

// WithConfig supplies a pre-loaded configuration, skipping environment
// resolution entirely.
func WithConfig(cfg *config.Config) Option {
	return func(s *clientSettings) { s.cfg = cfg }
}

// WithBaseURL overrides the backend origin.
func WithBaseURL(baseURL string) Option {
	return func(s *clientSettings) { s.baseURL = &baseURL }
}

// WithMockMode forces fixture-backed or live behavior regardless of the
// environment.
func WithMockMode(enabled bool) Option {
	return func(s *clientSettings) { s.mock = &enabled }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *clientSettings) { s.timeout = &d }
}

// WithHTTPClient sets a custom HTTP client for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *clientSettings) { s.httpClient = hc }
}

// WithSessionStore injects the store owning the bearer token. In-memory and
// file-backed implementations live in core.
func WithSessionStore(store core.SessionStore) Option {
	return func(s *clientSettings) { s.session = store }
}

// WithLogger sets the structured logger used across the SDK.
func WithLogger(l *zap.Logger) Option {
	return func(s *clientSettings) { s.logger = l }
}

// WithOnUnauthorized installs the hook invoked after a 401 clears the
// session. CLI and UI embeddings use this to route the user back to login.
func WithOnUnauthorized(fn func()) Option {
	return func(s *clientSettings) { s.onUnauthorized = fn }
}

// WithMockOptions forwards options to the mock proxy when mock mode is on.
func WithMockOptions(opts ...mock.Option) Option {
	return func(s *clientSettings) { s.mockOpts = append(s.mockOpts, opts...) }
}
