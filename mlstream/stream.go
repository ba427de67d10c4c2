// Package mlstream follows recommendation-model training progress over a
// websocket channel.
package mlstream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gebeyahub/gebeya-go/core"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventType discriminates training-progress messages.
type EventType string

const (
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventError     EventType = "error"
)

// Event is one tagged message from the training channel.
type Event struct {
	Type    EventType       `json:"type"`
	Stage   string          `json:"stage,omitempty"`
	Percent float64         `json:"percent,omitempty"`
	Message string          `json:"message,omitempty"`
	Results json.RawMessage `json:"results,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

// Stream is a live subscription to training progress. Events arrive on
// Events() until the context is canceled or Close is called; the connection
// reconnects automatically after a fixed delay on abnormal close. No
// ordering or delivery guarantee exists beyond the transport's.
type Stream struct {
	url            string
	session        core.SessionStore
	logger         *zap.Logger
	dialer         *websocket.Dialer
	reconnectDelay time.Duration

	events chan Event
	cancel context.CancelFunc
	done   chan struct{}

	closeOnce sync.Once
}

// Option mutates stream construction.
type Option func(*Stream)

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Stream) { s.logger = l }
}

// WithDialer overrides the websocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(s *Stream) { s.dialer = d }
}

// WithReconnectDelay overrides the pause before redialing.
func WithReconnectDelay(d time.Duration) Option {
	return func(s *Stream) { s.reconnectDelay = d }
}

// Dial opens the training-progress subscription at url (ws:// or wss://).
// The bearer token, when present, is attached to the handshake.
func Dial(ctx context.Context, url string, session core.SessionStore, opts ...Option) *Stream {
	s := &Stream{
		url:            url,
		session:        session,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: 3 * time.Second,
		events:         make(chan Event, 16),
		done:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.session == nil {
		s.session = core.NewMemorySession()
	}

	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
	return s
}

// Events returns the channel of training events. Closed when the stream ends.
func (s *Stream) Events() <-chan Event { return s.events }

// Close tears the subscription down. Safe to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
	})
	<-s.done
}

func (s *Stream) run(ctx context.Context) {
	defer close(s.events)
	defer close(s.done)

	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.consume(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("training stream disconnected, will reconnect",
				zap.String("url", s.url), zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Stream) consume(ctx context.Context) error {
	header := http.Header{}
	if token, ok := s.session.Token(); ok {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Unblock ReadMessage when the context is canceled mid-read.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			s.logger.Warn("dropping malformed training event", zap.Error(err))
			continue
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
