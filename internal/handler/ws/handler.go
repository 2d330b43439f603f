// Package ws carries a chat session over a websocket so clients can hold
// the whole conversation on one connection.
package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tripsmith/tripsmith/internal/service/agent"
	"github.com/tripsmith/tripsmith/pkg/utils"
)

// Handler upgrades chat connections to websockets.
type Handler struct {
	agentSvc *agent.Service
	upgrader websocket.Upgrader
}

// New creates the websocket handler.
func New(agentSvc *agent.Service) *Handler {
	return &Handler{
		agentSvc: agentSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleConnection)
}

type inboundMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type outgoingMessage struct {
	Type        string `json:"type"`
	SessionID   string `json:"sessionId,omitempty"`
	Reply       string `json:"reply,omitempty"`
	IsItinerary bool   `json:"isItinerary,omitempty"`
	Error       string `json:"error,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

func (h *Handler) handleConnection(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if _, err := h.agentSvc.Transcript(r.Context(), sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "session", sessionID, "error", err)
		return
	}
	defer conn.Close()

	slog.Info("websocket connected", "session", sessionID)

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket closed unexpectedly", "session", sessionID, "error", err)
			}
			return
		}

		switch in.Type {
		case "message":
			h.processTurn(r, conn, sessionID, in.Message)

		case "ping":
			h.send(conn, outgoingMessage{Type: "pong"})

		default:
			h.send(conn, outgoingMessage{Type: "error", Error: "unknown message type"})
		}
	}
}

func (h *Handler) processTurn(r *http.Request, conn *websocket.Conn, sessionID, text string) {
	if strings.TrimSpace(text) == "" {
		h.send(conn, outgoingMessage{Type: "error", SessionID: sessionID, Error: "message is required"})
		return
	}

	reply, err := h.agentSvc.ProcessMessage(r.Context(), sessionID, text)
	if err != nil {
		msg := "failed to process message"
		if errors.Is(err, agent.ErrSessionNotFound) {
			msg = "session not found"
		}
		h.send(conn, outgoingMessage{Type: "error", SessionID: sessionID, Error: msg})
		return
	}

	h.send(conn, outgoingMessage{
		Type:        "reply",
		SessionID:   sessionID,
		Reply:       reply.Text,
		IsItinerary: reply.IsItinerary,
	})
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	msg.Timestamp = time.Now().UnixMilli()
	payload, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal websocket message", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		slog.Warn("failed to write websocket message", "error", err)
	}
}
