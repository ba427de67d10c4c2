// Package metadata caches the slow-changing configuration bundle so pages do
// not refetch categories and locations on every visit.
package metadata

import (
	"context"
	"sync"
	"time"

	"github.com/gebeyahub/gebeya-go/api"
	"github.com/gebeyahub/gebeya-go/core"
	"go.uber.org/zap"
)

// DefaultTTL is how long a fetched bundle stays fresh.
const DefaultTTL = 10 * time.Minute

// fallback is served when the backend is unreachable; availability is
// favored over freshness.
var fallback = core.Metadata{
	Categories:    []string{"Grains", "Oils", "Vegetables", "Coffee", "Household"},
	Locations:     []string{"Addis Ababa", "Adama", "Hawassa", "Bahir Dar"},
	Units:         []string{"bag", "jerrycan", "crate", "sack", "carton"},
	GroupStatuses: []string{"pending", "active", "completed", "cancelled"},
	OrderStatuses: []string{"pending", "paid", "ready", "collected"},
}

// Service lazily caches the metadata bundle with a TTL.
type Service struct {
	api    api.Service
	logger *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	bundle *core.Metadata
	expiry time.Time
}

// Option mutates service construction.
type Option func(*Service)

// WithTTL overrides the cache window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides time for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds a metadata cache over the given service.
func New(a api.Service, opts ...Option) *Service {
	s := &Service{
		api: a,
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// All returns the cached bundle when unexpired, refetches when stale, and
// falls back to hardcoded defaults when the fetch fails.
func (s *Service) All(ctx context.Context) (core.Metadata, error) {
	s.mu.Lock()
	if s.bundle != nil && s.now().Before(s.expiry) {
		cached := *s.bundle
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	fresh, err := s.api.Metadata(ctx)
	if err != nil {
		s.logger.Warn("metadata fetch failed, serving defaults", zap.Error(err))
		return fallback, nil
	}

	s.mu.Lock()
	s.bundle = fresh
	s.expiry = s.now().Add(s.ttl)
	s.mu.Unlock()
	return *fresh, nil
}

// Categories prefers the lightweight endpoint and falls back to the bundle.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.api.Categories(ctx)
	if err == nil && len(cats) > 0 {
		return cats, nil
	}
	bundle, _ := s.All(ctx)
	return bundle.Categories, nil
}

// Locations prefers the lightweight endpoint and falls back to the bundle.
func (s *Service) Locations(ctx context.Context) ([]string, error) {
	locs, err := s.api.Locations(ctx)
	if err == nil && len(locs) > 0 {
		return locs, nil
	}
	bundle, _ := s.All(ctx)
	return bundle.Locations, nil
}

// Invalidate clears the cache, forcing the next All to refetch. Used after
// administrative edits to the underlying lists.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.bundle = nil
	s.expiry = time.Time{}
	s.mu.Unlock()
}
