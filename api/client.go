// Package api is the single choke point for every call to the marketplace
// backend. It owns the bearer-token lifecycle and normalizes every failure
// into a coded core.APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/gebeyahub/gebeya-go/core"
	"github.com/gebeyahub/gebeya-go/internal/httpclient"
	"github.com/gebeyahub/gebeya-go/obs"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Client talks HTTP to the backend. All typed entry points funnel through do
// or upload, so auth, error normalization and logging live in one place.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	session        core.SessionStore
	logger         *zap.Logger
	headers        map[string]string
	onUnauthorized func()
}

// Option mutates client construction.
type Option func(*Client)

// WithBaseURL sets the backend origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient overrides the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession injects the session store owning the bearer token.
func WithSession(s core.SessionStore) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHeader adds a header to every outgoing request.
func WithHeader(name, value string) Option {
	return func(c *Client) { c.headers[name] = value }
}

// WithOnUnauthorized installs the hard-stop hook invoked after a 401 clears
// the session. The browser original navigated to the login page here.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New constructs a Client with defaults suitable for production use.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: "http://localhost:8000",
		headers: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.New()
	}
	if c.session == nil {
		c.session = core.NewMemorySession()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Session exposes the store so callers can inspect or clear credentials.
func (c *Client) Session() core.SessionStore { return c.session }

// do performs a JSON round trip. body is JSON-encoded when non-nil; the
// response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) (err error) {
	ctx, recorder := obs.StartRequest(ctx, "api.request",
		attribute.String("http.method", method),
		attribute.String("api.endpoint", endpoint),
	)
	defer func() { recorder.End(err) }()

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return core.WrapError(fmt.Errorf("encode request body: %w", err), core.ErrInternal)
		}
		reader = buf
	}

	req, err := c.newRequest(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req, endpoint, out, recorder)
}

// upload performs a multipart round trip carrying exactly one field named
// "file". The multipart writer sets the content type so the boundary is
// included; callers must not force application/json here.
func (c *Client) upload(ctx context.Context, endpoint, filename string, file io.Reader, out any) (err error) {
	ctx, recorder := obs.StartRequest(ctx, "api.upload",
		attribute.String("http.method", http.MethodPost),
		attribute.String("api.endpoint", endpoint),
	)
	defer func() { recorder.End(err) }()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return core.WrapError(fmt.Errorf("create form file: %w", err), core.ErrInternal)
	}
	if _, err := io.Copy(part, file); err != nil {
		return core.WrapError(fmt.Errorf("read upload payload: %w", err), core.ErrInternal)
	}
	if err := mw.Close(); err != nil {
		return core.WrapError(fmt.Errorf("finalize multipart body: %w", err), core.ErrInternal)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.roundTrip(req, endpoint, out, recorder)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	if !strings.HasPrefix(endpoint, "/") {
		return nil, core.NewError(core.ErrInternal, fmt.Sprintf("endpoint %q must be server-relative", endpoint))
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, core.WrapError(err, core.ErrInternal)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) roundTrip(req *http.Request, endpoint string, out any, recorder *obs.RequestRecorder) error {
	// Epoch captured before the call so a logout that lands while this
	// request is in flight is not undone by our 401 handling.
	epoch := c.session.Epoch()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return core.NewError(core.ErrCanceled, fmt.Sprintf("request to %s canceled", endpoint),
				core.WithEndpoint(endpoint), core.WithWrapped(err))
		}
		return core.NewError(core.ErrTransport, fmt.Sprintf("request to %s failed", endpoint),
			core.WithEndpoint(endpoint), core.WithWrapped(err))
	}
	defer resp.Body.Close()

	recorder.AddAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.CompareAndClear(epoch)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.logger.Warn("session expired", zap.String("endpoint", endpoint))
		return core.NewError(core.ErrUnauthorized, "session expired or invalid",
			core.WithStatus(resp.StatusCode), core.WithEndpoint(endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.errorFromResponse(resp, endpoint)
		c.logger.Error("request rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("decode response failed", zap.String("endpoint", endpoint), zap.Error(err))
		return core.NewError(core.ErrInternal, fmt.Sprintf("decode response from %s", endpoint),
			core.WithEndpoint(endpoint), core.WithWrapped(err))
	}
	return nil
}

// errorBody is the backend's error envelope. FastAPI-style backends use
// "detail"; others use "message".
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

func (c *Client) errorFromResponse(resp *http.Response, endpoint string) *core.APIError {
	code := codeForStatus(resp.StatusCode)
	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(data) > 0 {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			if msg := body.detailText(); msg != "" {
				message = msg
			} else if body.Message != "" {
				message = body.Message
			}
		}
	}

	return core.NewError(code, message,
		core.WithStatus(resp.StatusCode), core.WithEndpoint(endpoint))
}

func (b errorBody) detailText() string {
	if len(b.Detail) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(b.Detail, &s) == nil {
		return s
	}
	// Validation errors arrive as a list of objects; surface the raw JSON
	// rather than dropping it.
	return strings.TrimSpace(string(b.Detail))
}

func codeForStatus(status int) core.ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusConflict:
		return core.ErrConflict
	case status >= 500:
		return core.ErrServerError
	default:
		return core.ErrBadRequest
	}
}

func queryValues(set func(url.Values)) string {
	v := url.Values{}
	set(v)
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
