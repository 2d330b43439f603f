package compose

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tripsmith/tripsmith/internal/model/trip"
)

func entries(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d - Description of %s %d", prefix, i+1, prefix, i+1)
	}
	return out
}

func TestItineraryCompleteWithEmptyInputs(t *testing.T) {
	state := trip.State{Destination: "Rome", DurationDays: 3}
	doc := Itinerary(state, Inputs{})

	sections := []string{
		"# Your 3-Day Itinerary for Rome",
		"## Current Weather",
		"## Budget Level",
		"## Your Preferences",
		"## Key Attractions to Visit",
		"## Recommended Restaurants",
		"## Accommodation Options",
		"## Daily Itinerary",
		"### Day 1",
		"### Day 3",
		"## Budget Tips",
		"## Additional Tips",
	}
	for _, s := range sections {
		if !strings.Contains(doc, s) {
			t.Fatalf("document missing section %q", s)
		}
	}

	if strings.Contains(doc, "%s") || strings.Contains(doc, "%d") {
		t.Fatalf("document contains unresolved placeholders:\n%s", doc)
	}
}

func TestItineraryDefaultsToFiveDays(t *testing.T) {
	state := trip.State{Destination: "Rome"}
	doc := Itinerary(state, Inputs{})

	if !strings.Contains(doc, "# Your 5-Day Itinerary for Rome") {
		t.Fatalf("expected 5-day default, got header %q", strings.SplitN(doc, "\n", 2)[0])
	}
	if !strings.Contains(doc, "### Day 5") {
		t.Fatalf("expected Day 5 section")
	}
	if strings.Contains(doc, "### Day 6") {
		t.Fatalf("unexpected Day 6 section")
	}
}

func TestSectionCaps(t *testing.T) {
	state := trip.State{Destination: "Rome", DurationDays: 2}
	doc := Itinerary(state, Inputs{
		Attractions:    entries("Attraction", 12),
		Restaurants:    entries("Restaurant", 9),
		Accommodations: entries("Hotel", 6),
	})

	if strings.Contains(doc, "Attraction 8") {
		t.Fatalf("attractions not capped at %d", MaxAttractions)
	}
	if !strings.Contains(doc, "Attraction 7") {
		t.Fatalf("expected first %d attractions kept", MaxAttractions)
	}
	if strings.Contains(doc, "Restaurant 6") {
		t.Fatalf("restaurants not capped at %d", MaxRestaurants)
	}
	if strings.Contains(doc, "Hotel 4") {
		t.Fatalf("accommodations not capped at %d", MaxAccommodations)
	}
}

func TestDailyPlanDoesNotRepeatWhileEntriesRemain(t *testing.T) {
	state := trip.State{Destination: "Rome", DurationDays: 2}
	doc := Itinerary(state, Inputs{Attractions: entries("Attraction", 4)})

	plan := doc[strings.Index(doc, "## Daily Itinerary"):]
	for i := 1; i <= 4; i++ {
		name := fmt.Sprintf("Attraction %d", i)
		if strings.Count(plan, name) != 1 {
			t.Fatalf("%s should appear exactly once in the daily plan:\n%s", name, plan)
		}
	}
}

func TestDailyPlanFillerWhenExhausted(t *testing.T) {
	state := trip.State{Destination: "Rome", DurationDays: 4}
	doc := Itinerary(state, Inputs{Attractions: entries("Attraction", 2)})

	if !strings.Contains(doc, "Free time to explore Rome") {
		t.Fatalf("expected filler activity once attractions are exhausted")
	}
}

func TestBudgetTipsVaryByLevel(t *testing.T) {
	low := Itinerary(trip.State{Destination: "Rome", DurationDays: 2, Budget: trip.BudgetLow}, Inputs{})
	high := Itinerary(trip.State{Destination: "Rome", DurationDays: 2, Budget: trip.BudgetHigh}, Inputs{})

	if !strings.Contains(low, "free museum days") {
		t.Fatalf("low budget tips missing")
	}
	if !strings.Contains(high, "private guides") {
		t.Fatalf("high budget tips missing")
	}
	if strings.Contains(low, "private guides") {
		t.Fatalf("budget tip sets must be exclusive")
	}
}

func TestDietarySectionOnlyWhenSet(t *testing.T) {
	plain := Itinerary(trip.State{Destination: "Rome", DurationDays: 2}, Inputs{})
	if strings.Contains(plain, "Dining Notes") {
		t.Fatalf("dietary section must be absent when no restriction is set")
	}

	vegan := Itinerary(trip.State{Destination: "Rome", DurationDays: 2, Dietary: trip.DietVegan}, Inputs{})
	if !strings.Contains(vegan, "Vegan Dining Notes") {
		t.Fatalf("expected vegan dining notes")
	}
}

func TestParisMarchOverride(t *testing.T) {
	state := trip.State{Destination: "Paris", DurationDays: 7, TravelMonth: "March"}
	doc := Itinerary(state, Inputs{})

	if !strings.Contains(doc, "Paris") {
		t.Fatalf("override document should mention Paris")
	}
	if !strings.Contains(doc, "### Day 7") {
		t.Fatalf("override should cover all 7 days")
	}

	generic := Itinerary(trip.State{Destination: "Paris", DurationDays: 7}, Inputs{})
	if doc == generic {
		t.Fatalf("March override should differ from the generic Paris itinerary")
	}
}

func TestOverrideVegetarianVariant(t *testing.T) {
	state := trip.State{Destination: "Paris", DurationDays: 3, TravelMonth: "March", Dietary: trip.DietVegetarian}
	doc := Itinerary(state, Inputs{})

	if !strings.Contains(strings.ToLower(doc), "vegetarian") {
		t.Fatalf("vegetarian override variant should mention vegetarian options")
	}
}
