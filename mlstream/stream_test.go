package mlstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gebeyahub/gebeya-go/core"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestStreamDeliversTaggedEvents(t *testing.T) {
	var gotAuth atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(Event{Type: EventProgress, Stage: "features", Percent: 40, Message: "extracting"})
		_ = conn.WriteJSON(Event{Type: EventCompleted, Message: "done"})
		// Hold the socket open until the client walks away.
		_, _, _ = conn.ReadMessage()
	}))
	defer ts.Close()

	session := core.NewMemorySession()
	session.Set("tok-ws")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream := Dial(ctx, wsURL(ts), session)

	ev := <-stream.Events()
	if ev.Type != EventProgress || ev.Stage != "features" || ev.Percent != 40 {
		t.Fatalf("unexpected first event: %+v", ev)
	}
	ev = <-stream.Events()
	if ev.Type != EventCompleted {
		t.Fatalf("unexpected second event: %+v", ev)
	}

	cancel()
	stream.Close()

	if auth, _ := gotAuth.Load().(string); auth != "Bearer tok-ws" {
		t.Fatalf("handshake Authorization = %q", auth)
	}
}

func TestStreamReconnectsAfterClose(t *testing.T) {
	var connections atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := connections.Add(1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.WriteJSON(Event{Type: EventProgress, Stage: "run", Percent: float64(n)})
		// Drop the connection; the client should redial.
		conn.Close()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream := Dial(ctx, wsURL(ts), nil, WithReconnectDelay(10*time.Millisecond))

	first := <-stream.Events()
	second := <-stream.Events()
	if first.Percent == second.Percent {
		t.Fatalf("expected events from two connections, got %+v and %+v", first, second)
	}
	if connections.Load() < 2 {
		t.Fatalf("expected at least 2 connections, got %d", connections.Load())
	}

	cancel()
	stream.Close()
}

func TestStreamDropsMalformedFrames(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		_ = conn.WriteJSON(Event{Type: EventError, Detail: "training crashed"})
		_, _, _ = conn.ReadMessage()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream := Dial(ctx, wsURL(ts), nil)

	ev := <-stream.Events()
	if ev.Type != EventError || ev.Detail != "training crashed" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	cancel()
	stream.Close()
}
