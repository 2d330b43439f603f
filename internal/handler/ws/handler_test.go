package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tripsmith/tripsmith/internal/enrich"
	"github.com/tripsmith/tripsmith/internal/service/agent"
)

func setupServer(t *testing.T) (*httptest.Server, *agent.Service) {
	t.Helper()
	agentSvc := agent.NewService(enrich.New(nil, nil, time.Minute))
	handler := New(agentSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, agentSvc
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) outgoingMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var out outgoingMessage
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read message: %v", err)
	}
	return out
}

func TestMessageTurn(t *testing.T) {
	srv, agentSvc := setupServer(t)
	sess := agentSvc.CreateSession(context.Background())
	conn := dial(t, srv, sess.ID)

	if err := conn.WriteJSON(inboundMessage{Type: "message", Message: "hello"}); err != nil {
		t.Fatalf("write message: %v", err)
	}

	out := readReply(t, conn)
	if out.Type != "reply" {
		t.Fatalf("expected reply, got %q (error %q)", out.Type, out.Error)
	}
	if out.SessionID != sess.ID {
		t.Fatalf("sessionId = %q, want %q", out.SessionID, sess.ID)
	}
	if out.Reply == "" {
		t.Fatalf("expected a non-empty reply")
	}
	if out.Timestamp == 0 {
		t.Fatalf("expected a timestamp")
	}
}

func TestPingPong(t *testing.T) {
	srv, agentSvc := setupServer(t)
	sess := agentSvc.CreateSession(context.Background())
	conn := dial(t, srv, sess.ID)

	if err := conn.WriteJSON(inboundMessage{Type: "ping"}); err != nil {
		t.Fatalf("write ping: %v", err)
	}

	if out := readReply(t, conn); out.Type != "pong" {
		t.Fatalf("expected pong, got %q", out.Type)
	}
}

func TestUnknownMessageType(t *testing.T) {
	srv, agentSvc := setupServer(t)
	sess := agentSvc.CreateSession(context.Background())
	conn := dial(t, srv, sess.ID)

	if err := conn.WriteJSON(inboundMessage{Type: "subscribe"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := readReply(t, conn)
	if out.Type != "error" || out.Error != "unknown message type" {
		t.Fatalf("expected unknown-type error, got %+v", out)
	}
}

func TestEmptyMessageRejected(t *testing.T) {
	srv, agentSvc := setupServer(t)
	sess := agentSvc.CreateSession(context.Background())
	conn := dial(t, srv, sess.ID)

	if err := conn.WriteJSON(inboundMessage{Type: "message", Message: "   "}); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := readReply(t, conn)
	if out.Type != "error" || out.Error != "message is required" {
		t.Fatalf("expected message-required error, got %+v", out)
	}
}

func TestUnknownSessionRejectedBeforeUpgrade(t *testing.T) {
	srv, _ := setupServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/no-such-session"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatalf("expected dial to fail for an unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
}
