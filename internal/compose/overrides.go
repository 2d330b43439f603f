package compose

import (
	"fmt"
	"strings"

	"github.com/tripsmith/tripsmith/internal/model/trip"
)

// overrideFunc renders a hand-authored itinerary for a destination/month
// pairing with better local knowledge than the generic algorithm.
type overrideFunc func(state trip.State, days int, weather string, attractions, restaurants, accommodations []string) string

// templateOverrides is keyed by lowercased "destination|month". Seasons are
// registered alongside their months so "Paris in spring" resolves too.
var templateOverrides = map[string]overrideFunc{
	"paris|march":  parisEarlySpring,
	"paris|spring": parisEarlySpring,
}

// RegisterOverride installs an itinerary template for a destination and
// month or season. Intended for wiring additional city templates without
// touching the composer.
func RegisterOverride(destination, month string, fn overrideFunc) {
	templateOverrides[overrideKey(destination, month)] = fn
}

func findOverride(destination, month string) overrideFunc {
	if destination == "" || month == "" {
		return nil
	}
	return templateOverrides[overrideKey(destination, month)]
}

func overrideKey(destination, month string) string {
	return strings.ToLower(destination) + "|" + strings.ToLower(month)
}

type parisDay struct {
	title     string
	morning   string
	lunch     string
	vegLunch  string
	afternoon string
	dinner    string
	vegDinner string
	evening   string
	tip       string
}

var parisSpringDays = []parisDay{
	{
		title:     "Classic Paris and the Louvre",
		morning:   "Visit the Louvre Museum (arrive early to avoid crowds) - the Mona Lisa, Venus de Milo, and Winged Victory",
		lunch:     "Enjoy lunch at Café Marly at the Louvre or nearby Les Antiquaires",
		vegLunch:  "Enjoy lunch at Café Marly at the Louvre (request vegetarian options)",
		afternoon: "Stroll through Tuileries Garden and Place de la Concorde",
		dinner:    "Dine at a classic bistro near the Palais Royal",
		vegDinner: "Dine at Le Potager du Marais, a traditional French vegetarian restaurant",
		evening:   "Walk along the Seine, cross Pont Neuf to Île de la Cité",
		tip:       "March in Paris can be chilly with occasional rain. The Louvre is less crowded on weekday evenings.",
	},
	{
		title:     "Impressionist Art and Montmartre",
		morning:   "Visit Musée d'Orsay for its Impressionist collection",
		lunch:     "Try a local bistro near Musée d'Orsay",
		vegLunch:  "Try Le Grenier de Notre-Dame across the river",
		afternoon: "Explore Montmartre and visit Sacré-Cœur Basilica",
		dinner:    "Dinner in Montmartre at La Maison Rose",
		vegDinner: "Dinner at Hank Burger, a popular plant-based spot",
		evening:   "See the Moulin Rouge from outside, or book a show if budget allows",
		tip:       "Musée d'Orsay is housed in a former railway station and holds the world's largest Impressionist collection.",
	},
	{
		title:     "Historical Paris",
		morning:   "Visit Notre-Dame Cathedral and Sainte-Chapelle",
		lunch:     "Try Breizh Café for authentic Breton crêpes",
		vegLunch:  "Try the vegetarian crêpes at Breizh Café",
		afternoon: "Tour the Conciergerie and explore the Latin Quarter",
		dinner:    "Dine at a traditional restaurant in the Latin Quarter",
		vegDinner: "Dine at Le Grenier de Notre-Dame in the Latin Quarter",
		evening:   "Evening stroll along the Seine to see Paris illuminated",
		tip:       "Sainte-Chapelle's stained glass is best on sunny days; check the forecast before choosing your morning.",
	},
	{
		title:     "Modern Art and the Eiffel Tower",
		morning:   "Visit Centre Pompidou for modern and contemporary art",
		lunch:     "Try a café near Centre Pompidou",
		vegLunch:  "Wild & The Moon for healthy plant-based options",
		afternoon: "Visit the Eiffel Tower (book summit tickets in advance)",
		dinner:    "Dinner at a restaurant with Eiffel Tower views",
		vegDinner: "Dinner at SEASON Paris, a modern café with vegetarian plates",
		evening:   "Take a Seine River evening cruise",
		tip:       "Book Eiffel Tower tickets well in advance and consider a sunset visit.",
	},
	{
		title:     "Royal History and Versailles",
		morning:   "Day trip to the Palace of Versailles (RER C, about 45 minutes)",
		lunch:     "Pack a picnic or eat at the restaurant on site",
		vegLunch:  "Pack a vegetarian picnic for the gardens",
		afternoon: "Explore the palace and gardens at Versailles",
		dinner:    "Return to Paris for dinner at a neighborhood bistro",
		vegDinner: "Return to Paris, dinner at SEASON Paris",
		evening:   "Relax at your hotel or enjoy a quiet evening walk",
		tip:       "Versailles is closed on Mondays; the gardens are lovely in March though some fountains may be off.",
	},
	{
		title:     "Marais District and Jewish History",
		morning:   "Explore the historic Marais district and Place des Vosges",
		lunch:     "Try L'As du Fallafel in the Jewish Quarter",
		vegLunch:  "Try the vegetarian falafel at L'As du Fallafel",
		afternoon: "Visit the Picasso Museum and the Museum of Jewish Art and History",
		dinner:    "Try another restaurant in the Marais",
		vegDinner: "Try another vegetarian-friendly restaurant in the Marais",
		evening:   "Enjoy the lively evening atmosphere of the Marais",
		tip:       "The Marais is one of the few districts where shops open on Sundays.",
	},
	{
		title:     "Literary Paris and Luxembourg Gardens",
		morning:   "Visit Shakespeare and Company and explore the Latin Quarter",
		lunch:     "Try a café in Saint-Germain-des-Prés",
		vegLunch:  "Find a vegetarian-friendly café in Saint-Germain-des-Prés",
		afternoon: "Relax in Luxembourg Gardens and visit the Panthéon",
		dinner:    "Farewell dinner at your favorite restaurant from the trip",
		vegDinner: "Farewell dinner at your favorite vegetarian find from the trip",
		evening:   "A final evening stroll along the Seine",
		tip:       "Luxembourg Gardens are especially beautiful in early spring when flowers begin to bloom.",
	},
}

// parisEarlySpring renders the curated Paris itinerary for March/spring
// trips. Shared sections (weather, caps, budget tips) keep the generic
// document structure so the output stays schema-compatible.
func parisEarlySpring(state trip.State, days int, weather string, attractions, restaurants, accommodations []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Your %d-Day Itinerary for Paris in %s\n\n", days, titleCase(state.TravelMonth))

	b.WriteString("## Current Weather\n")
	if weather != "" {
		b.WriteString(weather)
	} else {
		b.WriteString("Expect cool days (7-12°C) with occasional showers in early spring.")
	}
	b.WriteString("\n\n")

	writeSummary(&b, state)

	writeList(&b, "## Key Attractions to Visit", attractions, "Explore the classic sights of Paris at your own pace")
	writeList(&b, "## Recommended Restaurants", restaurants, "Sample bistros and cafés around central Paris")
	writeList(&b, "## Accommodation Options", accommodations, "Browse well-reviewed stays in central Paris")

	b.WriteString("## Daily Itinerary\n\n")

	vegetarian := state.Dietary == trip.DietVegetarian || state.Dietary == trip.DietVegan
	for i := 0; i < days && i < len(parisSpringDays); i++ {
		day := parisSpringDays[i]
		fmt.Fprintf(&b, "### Day %d: %s\n\n", i+1, day.title)
		fmt.Fprintf(&b, "**Morning:**\n- %s\n\n", day.morning)
		if vegetarian {
			fmt.Fprintf(&b, "**Lunch:**\n- %s\n\n", day.vegLunch)
		} else {
			fmt.Fprintf(&b, "**Lunch:**\n- %s\n\n", day.lunch)
		}
		fmt.Fprintf(&b, "**Afternoon:**\n- %s\n\n", day.afternoon)
		if vegetarian {
			fmt.Fprintf(&b, "**Dinner:**\n- %s\n\n", day.vegDinner)
		} else {
			fmt.Fprintf(&b, "**Dinner:**\n- %s\n\n", day.dinner)
		}
		fmt.Fprintf(&b, "**Evening:**\n- %s\n\n", day.evening)
		fmt.Fprintf(&b, "**Tip:** %s\n\n", day.tip)
	}
	for extra := len(parisSpringDays); extra < days; extra++ {
		fmt.Fprintf(&b, "### Day %d\n\n", extra+1)
		b.WriteString("**Morning:**\n- Free time to revisit a favorite neighborhood\n\n")
		b.WriteString("**Afternoon:**\n- Free time to explore Paris\n\n")
		b.WriteString("**Evening:**\n- Relax at your accommodation or enjoy local nightlife\n\n")
	}

	b.WriteString("## Seasonal Tips for Paris in Early Spring\n\n")
	b.WriteString("- Weather is typically cool (7-12°C) with occasional rain, so pack layers and a waterproof jacket.\n")
	b.WriteString("- It's shoulder season: attractions are less crowded than summer but still busy at peak times.\n")
	b.WriteString("- The first spring flowers appear in gardens like Luxembourg and Tuileries.\n")
	b.WriteString("- Days are getting longer, but bring an umbrella for showers.\n\n")

	writeBudgetTips(&b, state.Budget)
	writeDietaryTips(&b, state.Dietary)
	writeGeneralTips(&b, "Paris", state)

	return b.String()
}
