package mock

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gebeyahub/gebeya-go/api"
	"github.com/gebeyahub/gebeya-go/core"
	"github.com/google/uuid"
)

// Proxy presents the full api.Service surface. A curated subset of methods is
// served from the fixture dataset; every other method, and every method when
// the proxy is disabled, forwards verbatim to the embedded live service.
// Callers cannot tell which mode is active.
type Proxy struct {
	api.Service

	session    core.SessionStore
	enabled    bool
	delayScale float64
}

// Option mutates proxy construction.
type Option func(*Proxy)

// WithDelayScale scales simulated latency. 0 disables delays (tests).
func WithDelayScale(scale float64) Option {
	return func(p *Proxy) { p.delayScale = scale }
}

// WithEnabled toggles mock behavior. A disabled proxy forwards everything.
func WithEnabled(enabled bool) Option {
	return func(p *Proxy) { p.enabled = enabled }
}

// New wraps the live service. session receives the same token writes the
// real login/register flows would perform.
func New(live api.Service, session core.SessionStore, opts ...Option) *Proxy {
	p := &Proxy{
		Service:    live,
		session:    session,
		enabled:    true,
		delayScale: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.session == nil {
		p.session = core.NewMemorySession()
	}
	return p
}

// Capability tags one method of the Service surface.
type Capability string

const (
	// Mocked methods are served from the fixture dataset.
	Mocked Capability = "mocked"
	// Forwarded methods delegate to the live client unchanged.
	Forwarded Capability = "forwarded"
)

var mockedMethods = map[string]bool{
	"Login":             true,
	"Register":          true,
	"ListGroups":        true,
	"GetGroup":          true,
	"JoinGroup":         true,
	"ListProducts":      true,
	"Recommendations":   true,
	"InitializePayment": true,
	"VerifyPayment":     true,
	"Metadata":          true,
	"Categories":        true,
	"Locations":         true,
}

// Capabilities returns the dispatch table for the given Service method
// names: which are fixture-backed and which forward to the live client. The
// table makes the full surface statically enumerable for tests.
func Capabilities(methods []string) map[string]Capability {
	out := make(map[string]Capability, len(methods))
	for _, name := range methods {
		if mockedMethods[name] {
			out[name] = Mocked
		} else {
			out[name] = Forwarded
		}
	}
	return out
}

// MockedMethods lists the fixture-backed subset, sorted.
func MockedMethods() []string {
	out := make([]string, 0, len(mockedMethods))
	for name := range mockedMethods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// sleep simulates backend latency without ignoring cancellation.
func (p *Proxy) sleep(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * p.delayScale)
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return core.NewError(core.ErrCanceled, "mock call canceled", core.WithWrapped(ctx.Err()))
	case <-timer.C:
		return nil
	}
}

// Login accepts any credentials, shapes the response after the matching
// fixture user when one exists, and writes a fabricated token to the session
// exactly as the real flow would.
func (p *Proxy) Login(ctx context.Context, req api.LoginRequest) (*core.AuthResponse, error) {
	if !p.enabled {
		return p.Service.Login(ctx, req)
	}
	if err := p.sleep(ctx, 500*time.Millisecond); err != nil {
		return nil, err
	}
	user, ok := findUserByEmail(req.Email)
	if !ok {
		user = core.User{ID: 1000, Email: req.Email, FullName: "Demo Trader", Role: "trader", IsActive: true}
	}
	token := "mock-token-" + uuid.NewString()
	p.session.Set(token)
	u := user
	return &core.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		IsAdmin:     user.IsAdmin,
		UserType:    user.Role,
		User:        &u,
	}, nil
}

// Register echoes a subset of the input back as a freshly created account and
// performs the same session write as a real registration.
func (p *Proxy) Register(ctx context.Context, req api.RegisterRequest) (*core.AuthResponse, error) {
	if !p.enabled {
		return p.Service.Register(ctx, req)
	}
	if err := p.sleep(ctx, 600*time.Millisecond); err != nil {
		return nil, err
	}
	token := "mock-token-" + uuid.NewString()
	p.session.Set(token)
	user := core.User{
		ID:       1000 + int(uuid.New().ID()%9000),
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
		Role:     "trader",
		IsActive: true,
	}
	return &core.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    "trader",
		User:        &user,
	}, nil
}

// ListGroups filters the fixture groups by free text, category, location and
// status, mirroring the server's query parameters.
func (p *Proxy) ListGroups(ctx context.Context, filter core.GroupFilter) ([]core.Group, error) {
	if !p.enabled {
		return p.Service.ListGroups(ctx, filter)
	}
	if err := p.sleep(ctx, 600*time.Millisecond); err != nil {
		return nil, err
	}
	groups := Groups()
	out := groups[:0]
	q := strings.ToLower(filter.Query)
	for _, g := range groups {
		if q != "" && !matchesQuery(g, q) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(g.Category, filter.Category) {
			continue
		}
		if filter.Location != "" && !strings.EqualFold(g.Location, filter.Location) {
			continue
		}
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		out = append(out, g)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []core.Group{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchesQuery(g core.Group, q string) bool {
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.Description), q) ||
		strings.Contains(strings.ToLower(g.Category), q)
}

// GetGroup returns the matching fixture or a not-found error shaped like a
// real 404, so caller error paths behave identically in both modes.
func (p *Proxy) GetGroup(ctx context.Context, id int) (*core.Group, error) {
	if !p.enabled {
		return p.Service.GetGroup(ctx, id)
	}
	if err := p.sleep(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	g, ok := findGroup(id)
	if !ok {
		return nil, core.NewError(core.ErrNotFound, fmt.Sprintf("group %d not found", id),
			core.WithStatus(404), core.WithEndpoint(fmt.Sprintf("/api/groups/%d", id)))
	}
	return &g, nil
}

// JoinGroup synthesizes the payment handle a real join would return. Nothing
// is persisted; a subsequent ListGroups does not reflect the join.
func (p *Proxy) JoinGroup(ctx context.Context, id int, req core.JoinGroupRequest) (*core.JoinGroupResponse, error) {
	if !p.enabled {
		return p.Service.JoinGroup(ctx, id, req)
	}
	if err := p.sleep(ctx, 800*time.Millisecond); err != nil {
		return nil, err
	}
	g, ok := findGroup(id)
	if !ok {
		return nil, core.NewError(core.ErrNotFound, fmt.Sprintf("group %d not found", id),
			core.WithStatus(404), core.WithEndpoint(fmt.Sprintf("/api/groups/%d/join", id)))
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	txRef := "mock-tx-" + uuid.NewString()
	return &core.JoinGroupResponse{
		GroupID:     g.ID,
		Quantity:    quantity,
		Amount:      math.Round(g.Price*float64(quantity)*100) / 100,
		TxRef:       txRef,
		CheckoutURL: "https://checkout.gebeya.example/pay/" + txRef,
		Status:      "pending",
	}, nil
}

// ListProducts filters fixture products by category.
func (p *Proxy) ListProducts(ctx context.Context, category string) ([]core.Product, error) {
	if !p.enabled {
		return p.Service.ListProducts(ctx, category)
	}
	if err := p.sleep(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	products := Products()
	if category == "" {
		return products, nil
	}
	out := products[:0]
	for _, pr := range products {
		if strings.EqualFold(pr.Category, category) {
			out = append(out, pr)
		}
	}
	return out, nil
}

// Recommendations derives scored suggestions from the fixture groups.
func (p *Proxy) Recommendations(ctx context.Context, limit int) ([]core.Recommendation, error) {
	if !p.enabled {
		return p.Service.Recommendations(ctx, limit)
	}
	if err := p.sleep(ctx, 700*time.Millisecond); err != nil {
		return nil, err
	}
	out := make([]core.Recommendation, 0, len(fixtureRecommendations))
	for _, rec := range fixtureRecommendations {
		g, ok := findGroup(rec.groupID)
		if !ok {
			continue
		}
		out = append(out, core.Recommendation{Group: g, Score: rec.score, Reason: rec.reason})
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// InitializePayment fabricates a checkout handle.
func (p *Proxy) InitializePayment(ctx context.Context, req core.PaymentInitRequest) (*core.PaymentInit, error) {
	if !p.enabled {
		return p.Service.InitializePayment(ctx, req)
	}
	if err := p.sleep(ctx, 900*time.Millisecond); err != nil {
		return nil, err
	}
	txRef := "mock-tx-" + uuid.NewString()
	return &core.PaymentInit{
		TxRef:       txRef,
		CheckoutURL: "https://checkout.gebeya.example/pay/" + txRef,
		Status:      "pending",
	}, nil
}

// VerifyPayment reports success for any reference minted by this proxy and
// not-found for anything else, matching the real verify contract.
func (p *Proxy) VerifyPayment(ctx context.Context, txRef string) (*core.PaymentVerification, error) {
	if !p.enabled {
		return p.Service.VerifyPayment(ctx, txRef)
	}
	if err := p.sleep(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(txRef, "mock-tx-") {
		return nil, core.NewError(core.ErrNotFound, fmt.Sprintf("transaction %s not found", txRef),
			core.WithStatus(404), core.WithEndpoint("/api/payments/verify/"+txRef))
	}
	now := time.Now().UTC()
	return &core.PaymentVerification{
		TxRef:      txRef,
		Status:     core.PaymentSuccessful,
		Currency:   "ETB",
		VerifiedAt: &now,
	}, nil
}

// Metadata serves the fixture bundle.
func (p *Proxy) Metadata(ctx context.Context) (*core.Metadata, error) {
	if !p.enabled {
		return p.Service.Metadata(ctx)
	}
	if err := p.sleep(ctx, 200*time.Millisecond); err != nil {
		return nil, err
	}
	m := MetadataBundle()
	return &m, nil
}

// Categories serves the fixture category list.
func (p *Proxy) Categories(ctx context.Context) ([]string, error) {
	if !p.enabled {
		return p.Service.Categories(ctx)
	}
	if err := p.sleep(ctx, 200*time.Millisecond); err != nil {
		return nil, err
	}
	return MetadataBundle().Categories, nil
}

// Locations serves the fixture location list.
func (p *Proxy) Locations(ctx context.Context) ([]string, error) {
	if !p.enabled {
		return p.Service.Locations(ctx)
	}
	if err := p.sleep(ctx, 200*time.Millisecond); err != nil {
		return nil, err
	}
	return MetadataBundle().Locations, nil
}

var _ api.Service = (*Proxy)(nil)
