// Package compose renders trip state plus enrichment data into a complete
// markdown itinerary. Rendering is deterministic templating: for any state
// with a destination and duration the output is a full document, even when
// every enrichment input is empty.
package compose

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tripsmith/tripsmith/internal/model/trip"
)

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(s)
}

// Section caps. Truncation keeps the first N entries in provider order.
const (
	MaxAttractions    = 7
	MaxRestaurants    = 5
	MaxAccommodations = 3
)

// Inputs carries the enrichment results for one composition run. Any field
// may be empty; the composer substitutes generic filler text.
type Inputs struct {
	Weather        string
	Attractions    []string
	Restaurants    []string
	Accommodations []string
}

// Itinerary renders the full document for the given state. When the
// destination and travel month match a registered override, the
// hand-authored template is used instead of the generic day-by-day
// algorithm.
func Itinerary(state trip.State, in Inputs) string {
	days := state.DurationDays
	if days <= 0 {
		days = 5
	}

	attractions := lo.Slice(in.Attractions, 0, MaxAttractions)
	restaurants := lo.Slice(in.Restaurants, 0, MaxRestaurants)
	accommodations := lo.Slice(in.Accommodations, 0, MaxAccommodations)

	if override := findOverride(state.Destination, state.TravelMonth); override != nil {
		return override(state, days, in.Weather, attractions, restaurants, accommodations)
	}

	var b strings.Builder

	destination := state.Destination
	fmt.Fprintf(&b, "# Your %d-Day Itinerary for %s\n\n", days, destination)

	b.WriteString("## Current Weather\n")
	if in.Weather != "" {
		b.WriteString(in.Weather)
	} else {
		fmt.Fprintf(&b, "Check a local forecast for %s before you go.", destination)
	}
	b.WriteString("\n\n")

	writeSummary(&b, state)

	writeList(&b, "## Key Attractions to Visit", attractions,
		fmt.Sprintf("Explore the main sights of %s at your own pace", destination))
	writeList(&b, "## Recommended Restaurants", restaurants,
		fmt.Sprintf("Sample local cuisine around %s", destination))
	writeList(&b, "## Accommodation Options", accommodations,
		fmt.Sprintf("Browse well-reviewed stays in central %s", destination))

	writeDailyPlan(&b, destination, days, attractions, restaurants)
	writeBudgetTips(&b, state.Budget)
	writeDietaryTips(&b, state.Dietary)
	writeGeneralTips(&b, destination, state)

	return b.String()
}

func writeSummary(b *strings.Builder, state trip.State) {
	budget := state.Budget
	if budget == "" {
		budget = trip.BudgetModerate
	}
	fmt.Fprintf(b, "## Budget Level\n%s\n\n", titleCase(string(budget)))

	prefs := "General Tourism"
	if len(state.Preferences) > 0 {
		prefs = titleCase(strings.Join(state.Preferences, ", "))
	}
	fmt.Fprintf(b, "## Your Preferences\n%s", prefs)
	if state.Dietary != "" {
		fmt.Fprintf(b, ", %s Food Options", titleCase(string(state.Dietary)))
	}
	if state.Accessibility != "" {
		fmt.Fprintf(b, ", %s-Friendly Planning", titleCase(string(state.Accessibility)))
	}
	b.WriteString("\n\n")
}

func writeList(b *strings.Builder, heading string, entries []string, filler string) {
	b.WriteString(heading + "\n")
	if len(entries) == 0 {
		fmt.Fprintf(b, "- %s\n", filler)
	}
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s\n", entry)
	}
	b.WriteString("\n")
}

// writeDailyPlan distributes attractions across morning/afternoon slots and
// restaurants across lunch/dinner slots. The indexes are shared within a
// category so nothing repeats while entries remain; exhausted categories
// fall back to generic filler activities.
func writeDailyPlan(b *strings.Builder, destination string, days int, attractions, restaurants []string) {
	b.WriteString("## Daily Itinerary\n\n")

	attrIndex := 0
	restIndex := 0

	for day := 1; day <= days; day++ {
		fmt.Fprintf(b, "### Day %d\n\n", day)

		b.WriteString("**Morning:**\n")
		if attrIndex < len(attractions) {
			fmt.Fprintf(b, "- Visit %s\n", entryName(attractions[attrIndex]))
			attrIndex++
		} else {
			fmt.Fprintf(b, "- Free time to explore %s\n", destination)
		}

		b.WriteString("\n**Lunch:**\n")
		if restIndex < len(restaurants) {
			fmt.Fprintf(b, "- Enjoy a meal at %s\n", entryName(restaurants[restIndex]))
			restIndex++
		} else {
			b.WriteString("- Try a local café or bistro\n")
		}

		b.WriteString("\n**Afternoon:**\n")
		if attrIndex < len(attractions) {
			fmt.Fprintf(b, "- Explore %s\n", entryName(attractions[attrIndex]))
			attrIndex++
		} else {
			fmt.Fprintf(b, "- Shopping or relaxing in %s\n", destination)
		}

		b.WriteString("\n**Dinner:**\n")
		if restIndex < len(restaurants) {
			fmt.Fprintf(b, "- Dine at %s\n", entryName(restaurants[restIndex]))
			restIndex++
		} else {
			b.WriteString("- Explore local dining options near your accommodation\n")
		}

		b.WriteString("\n**Evening:**\n")
		if day%2 == 0 {
			fmt.Fprintf(b, "- Night walking tour of %s\n", destination)
		} else {
			b.WriteString("- Relax at your accommodation or enjoy local nightlife\n")
		}
		b.WriteString("\n")
	}
}

func writeBudgetTips(b *strings.Builder, budget trip.BudgetLevel) {
	b.WriteString("## Budget Tips\n\n")
	switch budget {
	case trip.BudgetLow:
		b.WriteString("- Look for free museum days and city walking tours to save money.\n")
		b.WriteString("- Consider picnics in parks to save on food costs.\n")
		b.WriteString("- Use public transportation rather than taxis.\n")
	case trip.BudgetHigh:
		b.WriteString("- Consider private guides for a more personalized experience.\n")
		b.WriteString("- Many high-end restaurants require reservations well in advance.\n")
		b.WriteString("- Book VIP experiences to skip lines at popular attractions.\n")
	default:
		b.WriteString("- Mix free activities with paid attractions for the best value.\n")
		b.WriteString("- Look for fixed-price lunch menus at well-rated restaurants.\n")
		b.WriteString("- Balance one splurge activity with low-cost days.\n")
	}
	b.WriteString("\n")
}

func writeDietaryTips(b *strings.Builder, dietary trip.DietaryPreference) {
	if dietary == "" {
		return
	}
	fmt.Fprintf(b, "## %s Dining Notes\n\n", titleCase(string(dietary)))
	fmt.Fprintf(b, "- We've highlighted %s-friendly options, but call ahead to confirm menus.\n", dietary)
	b.WriteString("- Food-finder apps can surface additional suitable restaurants nearby.\n\n")
}

func writeGeneralTips(b *strings.Builder, destination string, state trip.State) {
	b.WriteString("## Additional Tips\n\n")
	fmt.Fprintf(b, "- Always carry a map or use a navigation app when exploring %s.\n", destination)
	b.WriteString("- Check opening hours for attractions before visiting.\n")
	b.WriteString("- Consider purchasing city passes for multiple attractions if available.\n")
	if state.Accessibility == trip.NeedWheelchair {
		b.WriteString("- Confirm step-free access with venues and transit lines before relying on them.\n")
	}
}

// entryName extracts the place name from a "Name - Description" entry.
func entryName(entry string) string {
	if idx := strings.Index(entry, " - "); idx >= 0 {
		return entry[:idx]
	}
	return entry
}
