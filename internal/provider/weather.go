package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeather queries the OpenWeatherMap current-conditions API in metric
// units. Transient failures (429, 5xx) are retried with doubling backoff up
// to maxAttempts before the error is returned to the caller.
type OpenWeather struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

const weatherMaxAttempts = 3

// NewOpenWeather creates a client with a bounded per-call timeout.
func NewOpenWeather(apiKey string, timeout time.Duration) *OpenWeather {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OpenWeather{
		apiKey:   apiKey,
		endpoint: openWeatherEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type openWeatherPayload struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Message string `json:"message"`
}

// Current fetches the present conditions for a location.
func (w *OpenWeather) Current(ctx context.Context, location string) (WeatherReport, error) {
	if w.apiKey == "" {
		return WeatherReport{}, fmt.Errorf("openweather api key is not configured")
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", w.apiKey)
	query.Set("units", "metric")
	endpoint := w.endpoint + "?" + query.Encode()

	var resp *http.Response
	var err error
	delay := time.Second
	for attempt := 1; ; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return WeatherReport{}, err
		}

		resp, err = w.client.Do(req)
		if err != nil {
			return WeatherReport{}, fmt.Errorf("openweather request: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
			break
		}
		resp.Body.Close()

		if attempt >= weatherMaxAttempts {
			return WeatherReport{}, fmt.Errorf("openweather http %d after %d attempts", resp.StatusCode, attempt)
		}

		select {
		case <-ctx.Done():
			return WeatherReport{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	defer resp.Body.Close()

	var payload openWeatherPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return WeatherReport{}, fmt.Errorf("openweather decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := payload.Message
		if msg == "" {
			msg = resp.Status
		}
		return WeatherReport{}, fmt.Errorf("openweather: %s", msg)
	}

	report := WeatherReport{
		Location:    location,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
	}
	return report, nil
}
