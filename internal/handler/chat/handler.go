package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tripsmith/tripsmith/internal/compose"
	"github.com/tripsmith/tripsmith/internal/enrich"
	"github.com/tripsmith/tripsmith/internal/extract"
	"github.com/tripsmith/tripsmith/internal/model/trip"
	"github.com/tripsmith/tripsmith/internal/service/agent"
	"github.com/tripsmith/tripsmith/pkg/utils"
)

// Handler serves the conversational endpoints.
type Handler struct {
	agentSvc *agent.Service
	gateway  *enrich.Gateway
}

// New creates the chat handler.
func New(agentSvc *agent.Service, gateway *enrich.Gateway) *Handler {
	return &Handler{agentSvc: agentSvc, gateway: gateway}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/recommendations", h.handleRecommendations)
}

// handleChat processes one conversational turn. When no session ID is
// supplied a fresh session is created and returned with the reply.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = h.agentSvc.CreateSession(r.Context()).ID
	}

	reply, err := h.agentSvc.ProcessMessage(r.Context(), sessionID, payload.Message)
	if err != nil {
		if errors.Is(err, agent.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId":   sessionID,
		"reply":       reply.Text,
		"isItinerary": reply.IsItinerary,
	})
}

// handleRecommendations composes a one-shot itinerary for explicit trip
// parameters, without a conversation or session.
func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Destination  string   `json:"destination"`
		DurationDays int      `json:"durationDays"`
		Month        string   `json:"month"`
		Budget       string   `json:"budget"`
		Preferences  []string `json:"preferences"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	destination := extract.NormalizePlace(payload.Destination)
	if destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "destination is required")
		return
	}

	state := trip.State{
		Destination:  destination,
		DurationDays: payload.DurationDays,
		TravelMonth:  strings.TrimSpace(payload.Month),
		Budget:       trip.BudgetLevel(strings.ToLower(strings.TrimSpace(payload.Budget))),
		Preferences:  payload.Preferences,
	}
	if state.Budget == "" {
		state.Budget = trip.BudgetModerate
	}

	weather := ""
	if state.TravelMonth != "" {
		weather = h.gateway.SeasonalOutlook(destination, state.TravelMonth)
	}
	if weather == "" {
		weather = h.gateway.Weather(r.Context(), destination)
	}

	inputs := compose.Inputs{
		Weather:        weather,
		Attractions:    h.gateway.Attractions(r.Context(), destination, state.Preferences),
		Restaurants:    h.gateway.Restaurants(r.Context(), destination, state.Dietary),
		Accommodations: h.gateway.Accommodations(r.Context(), destination, state.Budget),
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"destination": destination,
		"itinerary":   compose.Itinerary(state, inputs),
	})
}
