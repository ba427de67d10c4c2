// Package gebeya is the entry point for the marketplace client SDK. It wires
// the HTTP client core, the mock/live proxy, the metadata cache and the
// training-progress stream behind one facade.
package gebeya

import (
	"context"
	"net/http"
	"time"

	"github.com/gebeyahub/gebeya-go/api"
	"github.com/gebeyahub/gebeya-go/config"
	"github.com/gebeyahub/gebeya-go/core"
	"github.com/gebeyahub/gebeya-go/internal/httpclient"
	"github.com/gebeyahub/gebeya-go/metadata"
	"github.com/gebeyahub/gebeya-go/mlstream"
	"github.com/gebeyahub/gebeya-go/mock"
	"go.uber.org/zap"
)

// Client is the assembled SDK. API() returns either the live client or the
// mock proxy depending on configuration; callers cannot tell which.
type Client struct {
	cfg     *config.Config
	session core.SessionStore
	logger  *zap.Logger
	live    *api.Client
	svc     api.Service
	meta    *metadata.Service
}

// New builds a Client. Configuration is loaded from the environment unless
// overridden through options.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	settings := &clientSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	cfg := settings.cfg
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	settings.applyOverrides(cfg)
	c.cfg = cfg

	c.logger = settings.logger
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	c.session = settings.session
	if c.session == nil {
		path := cfg.SessionPath
		if path == "" {
			path = core.DefaultSessionPath()
		}
		fs, err := core.NewFileSession(path)
		if err != nil {
			c.logger.Warn("session file unavailable, using in-memory session", zap.Error(err))
			c.session = core.NewMemorySession()
		} else {
			c.session = fs
		}
	}

	hc := settings.httpClient
	if hc == nil {
		hc = httpclient.New(httpclient.WithTimeout(cfg.Timeout))
	}

	c.live = api.New(
		api.WithBaseURL(cfg.BaseURL),
		api.WithHTTPClient(hc),
		api.WithSession(c.session),
		api.WithLogger(c.logger),
		api.WithOnUnauthorized(settings.onUnauthorized),
	)

	c.svc = c.live
	if cfg.Mock {
		c.svc = mock.New(c.live, c.session, settings.mockOpts...)
	}

	c.meta = metadata.New(c.svc, metadata.WithLogger(c.logger))
	return c, nil
}

// API returns the active service surface (live client or mock proxy).
func (c *Client) API() api.Service { return c.svc }

// Session returns the store owning the bearer token.
func (c *Client) Session() core.SessionStore { return c.session }

// Metadata returns the TTL-cached metadata service.
func (c *Client) Metadata() *metadata.Service { return c.meta }

// Config returns the effective configuration.
func (c *Client) Config() *config.Config { return c.cfg }

// TrainingProgress subscribes to the model-retraining websocket channel.
func (c *Client) TrainingProgress(ctx context.Context) *mlstream.Stream {
	return mlstream.Dial(ctx, c.cfg.WSURL+"/api/admin/ml/progress", c.session,
		mlstream.WithLogger(c.logger))
}

// PollPayment polls the active service until the transaction settles.
func (c *Client) PollPayment(ctx context.Context, txRef string, interval time.Duration) (*core.PaymentVerification, error) {
	return api.PollPayment(ctx, c.svc, txRef, interval)
}

// clientSettings accumulates option state before config resolution.
type clientSettings struct {
	cfg            *config.Config
	logger         *zap.Logger
	session        core.SessionStore
	httpClient     *http.Client
	onUnauthorized func()
	mockOpts       []mock.Option

	baseURL *string
	mock    *bool
	timeout *time.Duration
}

func (s *clientSettings) applyOverrides(cfg *config.Config) {
	if s.baseURL != nil {
		cfg.BaseURL = *s.baseURL
		cfg.WSURL = config.DeriveWSURL(cfg.BaseURL)
	}
	if s.mock != nil {
		cfg.Mock = *s.mock
	}
	if s.timeout != nil {
		cfg.Timeout = *s.timeout
	}
}
