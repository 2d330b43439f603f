// Package enrich retrieves supporting real-world data (weather, points of
// interest) for itinerary composition. Provider failures never escape this
// package: every operation degrades to curated fallback tables or a single
// generic advisory entry.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/tripsmith/tripsmith/internal/model/trip"
	"github.com/tripsmith/tripsmith/internal/provider"
)

const (
	// DefaultCacheTTL bounds how long a raw provider response is reused.
	DefaultCacheTTL = 5 * time.Minute

	minTitleLength       = 4
	minDescriptionLength = 12
	searchResultLimit    = 10
)

// Titles matching these terms are dropped: they are aggregator listicles,
// not individual places a traveler can visit.
var titleExclusions = []string{
	"booking.com", "tripadvisor", "expedia", "hotels.com", "agoda",
	"kayak", "10 best", "top 10", "the best", "list of",
}

// Gateway is the single entry point for enrichment lookups. One instance
// per process is fine for single-session use; multi-session deployments
// share it safely because the cache is internally locked and all other
// fields are read-only after construction.
type Gateway struct {
	search  provider.SearchProvider
	weather provider.WeatherProvider
	cache   *gocache.Cache
}

// New builds a gateway around the given providers. Either provider may be
// nil, in which case the corresponding lookups go straight to fallbacks.
func New(search provider.SearchProvider, weather provider.WeatherProvider, ttl time.Duration) *Gateway {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Gateway{
		search:  search,
		weather: weather,
		cache:   gocache.New(ttl, 2*ttl),
	}
}

// Weather returns a human-readable conditions summary, or an explanatory
// sentence when the provider is unavailable. It never returns an error.
func (g *Gateway) Weather(ctx context.Context, location string) string {
	if location == "" {
		return "Please tell me which city you would like the weather for."
	}
	if g.weather == nil {
		return fmt.Sprintf("Live weather is not configured; check a local forecast for %s before you travel.", location)
	}

	report, err := g.weather.Current(ctx, location)
	if err != nil {
		slog.Warn("weather lookup failed", "location", location, "error", err)
		return fmt.Sprintf("Weather information for %s is currently unavailable. Check a local forecast closer to your travel date.", location)
	}

	return fmt.Sprintf("Weather in %s: %s, Temperature: %.1f°C, Humidity: %d%%, Wind Speed: %.1f m/s",
		location, report.Description, report.Temperature, report.Humidity, report.WindSpeed)
}

var monthSeasons = map[string]string{
	"december": "winter", "january": "winter", "february": "winter",
	"march": "spring", "april": "spring", "may": "spring",
	"june": "summer", "july": "summer", "august": "summer",
	"september": "fall", "october": "fall", "november": "fall",
}

// SeasonalOutlook returns typical-conditions text for a stated travel
// month or season, or "" when the input names neither; callers fall back
// to a live lookup then. Forecasts do not reach months ahead, so this is
// advisory only.
func (g *Gateway) SeasonalOutlook(location, monthOrSeason string) string {
	key := strings.ToLower(strings.TrimSpace(monthOrSeason))
	season, ok := monthSeasons[key]
	if !ok {
		switch key {
		case "winter", "spring", "summer", "fall", "autumn":
			season = key
		default:
			return ""
		}
	}
	return fmt.Sprintf("Seasonal average for %s in %s: Please check closer to your travel date for accurate forecasts.", location, season)
}

// Attractions looks up points of interest matching the preference tags.
func (g *Gateway) Attractions(ctx context.Context, destination string, preferences []string) []string {
	query := fmt.Sprintf("Top tourist attractions in %s", destination)
	switch len(preferences) {
	case 0:
	case 1:
		query = fmt.Sprintf("Top %s attractions in %s", preferences[0], destination)
	default:
		query = fmt.Sprintf("Top %s attractions in %s", strings.Join(preferences, " and "), destination)
	}

	return g.lookup(ctx, query, destination, fallbackAttractions, []string{"restaurant", "hotel"},
		"attractions")
}

// Restaurants looks up dining options honoring a dietary restriction.
func (g *Gateway) Restaurants(ctx context.Context, destination string, dietary trip.DietaryPreference) []string {
	query := fmt.Sprintf("Best restaurants in %s", destination)
	if dietary != "" {
		query = fmt.Sprintf("Best %s restaurants in %s", dietary, destination)
	}

	return g.lookup(ctx, query, destination, fallbackRestaurants, []string{"hotel", "hostel", "museum"},
		"restaurants")
}

// Accommodations looks up lodging matched to the budget tier.
func (g *Gateway) Accommodations(ctx context.Context, destination string, budget trip.BudgetLevel) []string {
	query := fmt.Sprintf("Best hotels in %s", destination)
	switch budget {
	case trip.BudgetLow:
		query = fmt.Sprintf("Best budget hotels in %s", destination)
	case trip.BudgetModerate:
		query = fmt.Sprintf("Best mid-range hotels in %s", destination)
	case trip.BudgetHigh:
		query = fmt.Sprintf("Best luxury hotels in %s", destination)
	}

	return g.lookup(ctx, query, destination, fallbackAccommodations, []string{"restaurant", "museum"},
		"accommodations")
}

// SpecialInterest looks up venues for a niche interest such as broadway,
// wine, or photography.
func (g *Gateway) SpecialInterest(ctx context.Context, destination, interest string) []string {
	query := fmt.Sprintf("Best %s experiences in %s", interest, destination)
	return g.lookup(ctx, query, destination, nil, nil, interest)
}

// lookup runs the shared search → filter → fallback pipeline. The raw
// provider response is cached by exact query string; the quality filter
// preserves provider order and never re-ranks.
func (g *Gateway) lookup(ctx context.Context, query, destination string, fallback map[string][]string, categoryExclusions []string, kind string) []string {
	results := g.cachedSearch(ctx, query)

	filtered := lo.FilterMap(results, func(r provider.SearchResult, _ int) (string, bool) {
		if !acceptResult(r, categoryExclusions) {
			return "", false
		}
		return formatResult(r), true
	})

	if len(filtered) > 0 {
		return filtered
	}

	key := strings.ToLower(destination)
	if fallback != nil {
		if entries, ok := fallback[key]; ok {
			slog.Debug("using fallback table", "destination", key, "kind", kind)
			return append([]string(nil), entries...)
		}
	}

	return []string{fmt.Sprintf("No %s data available for %s yet - ask me about attractions in a nearby major city, or try again later.", kind, destination)}
}

func (g *Gateway) cachedSearch(ctx context.Context, query string) []provider.SearchResult {
	if g.search == nil {
		return nil
	}

	if cached, ok := g.cache.Get(query); ok {
		return cached.([]provider.SearchResult)
	}

	results, err := g.search.Search(ctx, query, searchResultLimit)
	if err != nil {
		slog.Warn("search lookup failed", "query", query, "error", err)
		return nil
	}

	g.cache.Set(query, results, gocache.DefaultExpiration)
	return results
}

func acceptResult(r provider.SearchResult, categoryExclusions []string) bool {
	title := strings.ToLower(r.Title)
	if len(r.Title) < minTitleLength || len(r.Description) < minDescriptionLength {
		return false
	}
	for _, term := range titleExclusions {
		if strings.Contains(title, term) {
			return false
		}
	}
	for _, term := range categoryExclusions {
		if strings.Contains(title, term) {
			return false
		}
	}
	return true
}

func formatResult(r provider.SearchResult) string {
	entry := r.Title + " - " + r.Description
	switch {
	case r.Rating != "" && r.Price != "":
		entry += fmt.Sprintf(" (Rating: %s, Price: %s)", r.Rating, r.Price)
	case r.Rating != "":
		entry += fmt.Sprintf(" (Rating: %s)", r.Rating)
	case r.Price != "":
		entry += fmt.Sprintf(" (Price: %s)", r.Price)
	}
	return entry
}
