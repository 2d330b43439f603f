package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tripsmith/tripsmith/internal/service/agent"
	"github.com/tripsmith/tripsmith/pkg/utils"
)

// Handler exposes session lifecycle and inspection endpoints.
type Handler struct {
	agentSvc *agent.Service
}

// New creates the session handler.
func New(agentSvc *agent.Service) *Handler {
	return &Handler{agentSvc: agentSvc}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreate)
	r.Route("/session/{sessionID}", func(sr chi.Router) {
		sr.Post("/messages", h.handleMessage)
		sr.Get("/transcript", h.handleTranscript)
		sr.Get("/itinerary", h.handleItinerary)
		sr.Get("/state", h.handleState)
		sr.Post("/reset", h.handleReset)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess := h.agentSvc.CreateSession(r.Context())
	utils.RespondJSON(w, http.StatusCreated, sess)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.agentSvc.ProcessMessage(r.Context(), sessionID, payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId":   sessionID,
		"reply":       reply.Text,
		"isItinerary": reply.IsItinerary,
	})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.agentSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"messages":  messages,
	})
}

func (h *Handler) handleItinerary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	doc, err := h.agentSvc.Itinerary(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if doc == "" {
		utils.RespondError(w, http.StatusNotFound, "no itinerary generated yet")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"itinerary": doc,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	state, err := h.agentSvc.TripState(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"state":     state,
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.agentSvc.Reset(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, agent.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, err.Error())
}
