// Package provider holds the outbound clients for weather and web search.
// These are the only I/O boundaries of the pipeline; everything above them
// treats results as opaque ordered lists and recovers locally from errors.
package provider

import "context"

// SearchResult is one entry from a web search, in provider return order.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Price       string `json:"price,omitempty"`
}

// SearchProvider performs a capped web search for a query.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// WeatherReport carries current conditions for a location.
type WeatherReport struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// WeatherProvider fetches current conditions by place name.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (WeatherReport, error)
}
