// Package agent orchestrates the conversation pipeline: each user turn is
// extracted into trip state, routed to an action, and answered with text or
// a composed itinerary. One session owns one trip state, one history, and
// at most one current itinerary.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripsmith/tripsmith/internal/compose"
	"github.com/tripsmith/tripsmith/internal/enrich"
	"github.com/tripsmith/tripsmith/internal/extract"
	"github.com/tripsmith/tripsmith/internal/model/trip"
	"github.com/tripsmith/tripsmith/internal/route"
)

var ErrSessionNotFound = errors.New("session not found")

const apologyText = "I'm sorry, something went wrong on my end while handling that. Could you try rephrasing your request?"

// Session describes a conversation to API clients.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reply is the outcome of one processed turn.
type Reply struct {
	Text        string     `json:"text"`
	IsItinerary bool       `json:"isItinerary"`
	Action      route.Kind `json:"action"`
}

type session struct {
	mu        sync.Mutex
	id        string
	createdAt time.Time
	trip      trip.State
	history   trip.History
	itinerary string
}

// Service manages sessions and runs the turn pipeline. Sessions are
// isolated: each holds its own state and is locked for the duration of a
// turn, so turns within a session are strictly sequential.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session
	gateway  *enrich.Gateway
}

// NewService builds the agent around an enrichment gateway.
func NewService(gateway *enrich.Gateway) *Service {
	return &Service{
		sessions: make(map[string]*session),
		gateway:  gateway,
	}
}

// CreateSession provisions an empty conversation.
func (s *Service) CreateSession(_ context.Context) Session {
	sess := &session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	return Session{ID: sess.id, CreatedAt: sess.createdAt}
}

func (s *Service) find(sessionID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ProcessMessage runs the full pipeline for one user turn and returns the
// assistant's reply. Unexpected failures are caught here and replaced with
// a single apology line; internals are never surfaced to the user.
func (s *Service) ProcessMessage(ctx context.Context, sessionID, text string) (reply Reply, err error) {
	sess, err := s.find(sessionID)
	if err != nil {
		return Reply{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("turn pipeline panicked", "session", sessionID, "panic", r)
			reply = Reply{Text: apologyText, Action: route.KindAnswer}
			err = nil
		}
	}()

	sess.history.Append(trip.RoleUser, text)

	extracted := extract.FromMessages(sess.history.UserContents())
	merge := sess.trip.Merge(extracted)

	action := route.Decide(route.Input{
		Message:              text,
		State:                &sess.trip,
		DurationJustProvided: merge.DurationProvided,
		ItineraryExists:      sess.itinerary != "",
	})

	reply = s.perform(ctx, sess, action)
	if reply.Text != "" {
		sess.history.Append(trip.RoleAssistant, reply.Text)
	}
	return reply, nil
}

func (s *Service) perform(ctx context.Context, sess *session, action route.Action) Reply {
	switch action.Kind {
	case route.KindGenerate:
		doc := s.generate(ctx, sess)
		return Reply{Text: doc, IsItinerary: true, Action: action.Kind}

	case route.KindLookup:
		return Reply{Text: s.lookup(ctx, sess, action), Action: action.Kind}

	case route.KindAnswer, route.KindClarify:
		return Reply{Text: action.Text, Action: action.Kind}

	default:
		return Reply{Action: route.KindNone}
	}
}

// generate composes a fresh itinerary, replacing any previous one wholesale.
func (s *Service) generate(ctx context.Context, sess *session) string {
	if sess.trip.Budget == "" {
		sess.trip.Budget = trip.BudgetModerate
	}
	if sess.trip.DurationDays == 0 {
		sess.trip.DurationDays = 5
	}

	dest := sess.trip.Destination

	// A stated travel month means the trip is not imminent; a live
	// forecast would be meaningless that far out.
	weather := ""
	if sess.trip.TravelMonth != "" {
		weather = s.gateway.SeasonalOutlook(dest, sess.trip.TravelMonth)
	}
	if weather == "" {
		weather = s.gateway.Weather(ctx, dest)
	}

	inputs := compose.Inputs{
		Weather:        weather,
		Attractions:    s.gateway.Attractions(ctx, dest, sess.trip.Preferences),
		Restaurants:    s.gateway.Restaurants(ctx, dest, sess.trip.Dietary),
		Accommodations: s.gateway.Accommodations(ctx, dest, sess.trip.Budget),
	}

	doc := compose.Itinerary(sess.trip, inputs)
	sess.itinerary = doc
	slog.Info("itinerary generated", "session", sess.id, "destination", dest, "days", sess.trip.DurationDays)
	return doc
}

func (s *Service) lookup(ctx context.Context, sess *session, action route.Action) string {
	switch action.Lookup {
	case route.LookupWeather:
		return s.gateway.Weather(ctx, action.Param)

	case route.LookupAttractions:
		entries := s.gateway.Attractions(ctx, action.Param, sess.trip.Preferences)
		return bulleted("Here are some top attractions I recommend:", entries, 5)

	case route.LookupRestaurants:
		entries := s.gateway.Restaurants(ctx, action.Param, sess.trip.Dietary)
		return bulleted("Here are some restaurants you might enjoy:", entries, 5)

	case route.LookupAccommodations:
		entries := s.gateway.Accommodations(ctx, action.Param, sess.trip.Budget)
		return bulleted("Here are some accommodation options I recommend:", entries, 5)

	case route.LookupSpecialInterest:
		entries := s.gateway.SpecialInterest(ctx, sess.trip.Destination, action.Param)
		return bulleted(fmt.Sprintf("Here are some %s picks for your trip:", action.Param), entries, 5)
	}
	return apologyText
}

func bulleted(header string, entries []string, limit int) string {
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := header + "\n"
	for _, e := range entries {
		out += "\n- " + e
	}
	return out
}

// Reset clears trip state, history, and the itinerary atomically; no
// partial reset is observable from another goroutine.
func (s *Service) Reset(_ context.Context, sessionID string) error {
	sess, err := s.find(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.trip = trip.State{}
	sess.history = trip.History{}
	sess.itinerary = ""
	sess.mu.Unlock()

	slog.Info("session reset", "session", sessionID)
	return nil
}

// Transcript returns the recorded turns of a session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]trip.Message, error) {
	sess, err := s.find(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.history.Messages(), nil
}

// Itinerary returns the current itinerary document, or "" when none has
// been generated yet.
func (s *Service) Itinerary(_ context.Context, sessionID string) (string, error) {
	sess, err := s.find(sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.itinerary, nil
}

// TripState returns a copy of the accumulated trip fields.
func (s *Service) TripState(_ context.Context, sessionID string) (trip.State, error) {
	sess, err := s.find(sessionID)
	if err != nil {
		return trip.State{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	copied := sess.trip
	copied.Preferences = append([]string(nil), sess.trip.Preferences...)
	copied.SpecialInterests = append([]string(nil), sess.trip.SpecialInterests...)
	return copied, nil
}
