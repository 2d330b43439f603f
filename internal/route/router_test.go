package route

import (
	"strings"
	"testing"

	"github.com/tripsmith/tripsmith/internal/model/trip"
)

func TestEmptyMessage(t *testing.T) {
	action := Decide(Input{Message: "   ", State: &trip.State{}})
	if action.Kind != KindNone {
		t.Fatalf("kind = %q, want none", action.Kind)
	}
}

func TestWeatherWithExplicitCity(t *testing.T) {
	action := Decide(Input{Message: "What's the weather in Tokyo?", State: &trip.State{}})

	if action.Kind != KindLookup || action.Lookup != LookupWeather {
		t.Fatalf("expected weather lookup, got %+v", action)
	}
	if action.Param != "Tokyo" {
		t.Fatalf("param = %q, want Tokyo", action.Param)
	}
}

func TestWeatherFallsBackToStateDestination(t *testing.T) {
	state := &trip.State{Destination: "Paris"}
	action := Decide(Input{Message: "how's the weather looking", State: state})

	if action.Kind != KindLookup || action.Lookup != LookupWeather || action.Param != "Paris" {
		t.Fatalf("expected weather lookup for Paris, got %+v", action)
	}
}

func TestWeatherWithoutAnyCityClarifies(t *testing.T) {
	action := Decide(Input{Message: "what is the weather like", State: &trip.State{}})
	if action.Kind != KindClarify {
		t.Fatalf("expected clarify, got %+v", action)
	}
}

func TestWeatherOutranksGeneration(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{
		Message:              "5 days, but first what's the weather in Paris",
		State:                state,
		DurationJustProvided: true,
	})

	if action.Kind != KindLookup || action.Lookup != LookupWeather {
		t.Fatalf("weather must outrank generation, got %+v", action)
	}
}

func TestDurationJustProvidedGenerates(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{
		Message:              "let's say about 5 days in total",
		State:                state,
		DurationJustProvided: true,
	})

	if action.Kind != KindGenerate {
		t.Fatalf("kind = %q, want generate", action.Kind)
	}
}

func TestBareNumberGenerates(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{Message: "5", State: state})

	if action.Kind != KindGenerate {
		t.Fatalf("kind = %q, want generate", action.Kind)
	}
}

func TestBareNumberAfterItineraryDoesNotRegenerate(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{Message: "5 days", State: state, ItineraryExists: true})

	if action.Kind == KindGenerate {
		t.Fatalf("bare duration must not regenerate an existing itinerary")
	}
}

func TestGreetingWithoutDestination(t *testing.T) {
	action := Decide(Input{Message: "hello", State: &trip.State{}})

	if action.Kind != KindAnswer {
		t.Fatalf("kind = %q, want answer", action.Kind)
	}
	if action.Text == "" {
		t.Fatalf("greeting answer must carry text")
	}
}

func TestGreetingWordBoundary(t *testing.T) {
	// "hi" inside "this" and "thing" must not trigger the greeting reply.
	action := Decide(Input{Message: "this particular thing needs serious planning", State: &trip.State{}})
	if action.Kind != KindClarify {
		t.Fatalf("expected destination clarify, got %+v", action)
	}
}

func TestMissingDestinationClarifies(t *testing.T) {
	action := Decide(Input{Message: "I want to plan something fun", State: &trip.State{}})

	if action.Kind != KindClarify {
		t.Fatalf("kind = %q, want clarify", action.Kind)
	}
	// Wording varies; every variant lists the supported cities.
	if !strings.Contains(action.Text, "London") {
		t.Fatalf("clarify text should list destinations, got %q", action.Text)
	}
}

func TestMissingDurationClarifies(t *testing.T) {
	state := &trip.State{Destination: "Paris"}
	action := Decide(Input{Message: "help me plan the perfect getaway", State: state})

	if action.Kind != KindClarify {
		t.Fatalf("kind = %q, want clarify, action %+v", action.Kind, action)
	}
	if !strings.Contains(action.Text, "Paris") {
		t.Fatalf("duration clarify should mention the destination, got %q", action.Text)
	}
}

func TestTopicalLookups(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}

	cases := []struct {
		message string
		want    LookupKind
	}{
		{"what museums should I see", LookupAttractions},
		{"any good restaurants there", LookupRestaurants},
		{"where should I stay, any hotel tips", LookupAccommodations},
	}

	for _, tc := range cases {
		action := Decide(Input{Message: tc.message, State: state, ItineraryExists: true})
		if action.Kind != KindLookup || action.Lookup != tc.want {
			t.Fatalf("%q: got %+v, want lookup %q", tc.message, action, tc.want)
		}
		if action.Param != "Paris" {
			t.Fatalf("%q: param = %q, want Paris", tc.message, action.Param)
		}
	}
}

func TestSpecialInterestLookup(t *testing.T) {
	state := &trip.State{
		Destination:      "New York",
		DurationDays:     4,
		SpecialInterests: []string{"broadway"},
	}
	action := Decide(Input{Message: "tell me more about broadway", State: state, ItineraryExists: true})

	if action.Kind != KindLookup || action.Lookup != LookupSpecialInterest || action.Param != "broadway" {
		t.Fatalf("expected broadway lookup, got %+v", action)
	}
}

func TestReadyStateGenerates(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{Message: "sounds good, put it together", State: state})

	if action.Kind != KindGenerate {
		t.Fatalf("kind = %q, want generate", action.Kind)
	}
}

func TestGenericMessageAfterItineraryFollowsUp(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	action := Decide(Input{Message: "sounds good, put it together", State: state, ItineraryExists: true})

	if action.Kind != KindAnswer || action.Text == "" {
		t.Fatalf("expected follow-up answer, got %+v", action)
	}
}

func TestKindIsDeterministic(t *testing.T) {
	state := &trip.State{Destination: "Paris", DurationDays: 5}
	in := Input{Message: "any good restaurants there", State: state, ItineraryExists: true}

	first := Decide(in)
	for i := 0; i < 20; i++ {
		if got := Decide(in); got.Kind != first.Kind || got.Lookup != first.Lookup || got.Param != first.Param {
			t.Fatalf("routing drifted on identical input: %+v vs %+v", got, first)
		}
	}
}
