package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tripsmith/tripsmith/internal/enrich"
	"github.com/tripsmith/tripsmith/internal/route"
)

func newTestService() *Service {
	// No live providers; the gateway serves curated fallbacks.
	return NewService(enrich.New(nil, nil, time.Minute))
}

func TestFullPlanningConversation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	sess := svc.CreateSession(ctx)

	reply, err := svc.ProcessMessage(ctx, sess.ID, "hi")
	if err != nil {
		t.Fatalf("greeting turn failed: %v", err)
	}
	if reply.IsItinerary || reply.Text == "" {
		t.Fatalf("greeting turn should answer with text, got %+v", reply)
	}

	reply, err = svc.ProcessMessage(ctx, sess.ID, "I want to travel to Paris")
	if err != nil {
		t.Fatalf("destination turn failed: %v", err)
	}
	if reply.IsItinerary {
		t.Fatalf("destination alone must not generate an itinerary")
	}
	if !strings.Contains(reply.Text, "Paris") {
		t.Fatalf("expected a follow-up about Paris, got %q", reply.Text)
	}

	reply, err = svc.ProcessMessage(ctx, sess.ID, "5 days")
	if err != nil {
		t.Fatalf("duration turn failed: %v", err)
	}
	if !reply.IsItinerary {
		t.Fatalf("expected itinerary once duration arrived, got %+v", reply)
	}
	if !strings.Contains(reply.Text, "# Your 5-Day Itinerary for Paris") {
		t.Fatalf("unexpected itinerary header:\n%s", reply.Text[:min(len(reply.Text), 200)])
	}

	doc, err := svc.Itinerary(ctx, sess.ID)
	if err != nil || doc != reply.Text {
		t.Fatalf("stored itinerary should match the reply (err=%v)", err)
	}
}

func TestWeatherQuestionWithEmptyState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	sess := svc.CreateSession(ctx)

	reply, err := svc.ProcessMessage(ctx, sess.ID, "What's the weather in Tokyo?")
	if err != nil {
		t.Fatalf("weather turn failed: %v", err)
	}
	if reply.IsItinerary {
		t.Fatalf("weather question must not generate an itinerary")
	}
	if !strings.Contains(reply.Text, "Tokyo") {
		t.Fatalf("weather reply should name the city, got %q", reply.Text)
	}
	if reply.Action != route.KindLookup {
		t.Fatalf("action = %q, want lookup", reply.Action)
	}
}

func TestStateAccumulatesAcrossTurns(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	sess := svc.CreateSession(ctx)

	svc.ProcessMessage(ctx, sess.ID, "I'm planning a trip to London")
	svc.ProcessMessage(ctx, sess.ID, "I love art and history, and I'm vegetarian")

	state, err := svc.TripState(ctx, sess.ID)
	if err != nil {
		t.Fatalf("trip state failed: %v", err)
	}
	if state.Destination != "London" {
		t.Fatalf("destination = %q, want London", state.Destination)
	}
	if len(state.Preferences) != 2 {
		t.Fatalf("preferences = %v, want art and history", state.Preferences)
	}
	if string(state.Dietary) != "vegetarian" {
		t.Fatalf("dietary = %q, want vegetarian", state.Dietary)
	}
}

func TestResetClearsEverything(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	sess := svc.CreateSession(ctx)

	svc.ProcessMessage(ctx, sess.ID, "trip to Paris")
	svc.ProcessMessage(ctx, sess.ID, "5 days")

	if err := svc.Reset(ctx, sess.ID); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	state, _ := svc.TripState(ctx, sess.ID)
	if state.Destination != "" || state.DurationDays != 0 {
		t.Fatalf("reset left trip state behind: %+v", state)
	}

	doc, _ := svc.Itinerary(ctx, sess.ID)
	if doc != "" {
		t.Fatalf("reset left an itinerary behind")
	}

	transcript, _ := svc.Transcript(ctx, sess.ID)
	if len(transcript) != 0 {
		t.Fatalf("reset left %d transcript messages behind", len(transcript))
	}

	// The session survives the reset and can start over.
	reply, err := svc.ProcessMessage(ctx, sess.ID, "hello")
	if err != nil || reply.Text == "" {
		t.Fatalf("session unusable after reset: %v", err)
	}
}

func TestUnknownSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.ProcessMessage(ctx, "missing", "hi"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Transcript(ctx, "missing"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.Reset(ctx, "missing"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTranscriptRecordsBothRoles(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	sess := svc.CreateSession(ctx)

	svc.ProcessMessage(ctx, sess.ID, "hello")

	transcript, err := svc.Transcript(ctx, sess.ID)
	if err != nil {
		t.Fatalf("transcript failed: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("expected user and assistant turns, got %d messages", len(transcript))
	}
	if transcript[0].Content != "hello" {
		t.Fatalf("first message = %q, want user content", transcript[0].Content)
	}
}
