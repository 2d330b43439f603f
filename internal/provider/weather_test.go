package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testWeatherServer(t *testing.T, handler http.HandlerFunc) *OpenWeather {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	w := NewOpenWeather("test-key", time.Second)
	w.endpoint = srv.URL
	return w
}

func TestCurrentDecodesMetricReport(t *testing.T) {
	w := testWeatherServer(t, func(rw http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units = %q, want metric", got)
		}
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Errorf("q = %q, want Paris", got)
		}
		rw.Write([]byte(`{
			"main": {"temp": 18.5, "humidity": 60},
			"weather": [{"description": "clear sky"}],
			"wind": {"speed": 3.2}
		}`))
	})

	report, err := w.Current(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Temperature != 18.5 || report.Humidity != 60 || report.WindSpeed != 3.2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Description != "clear sky" {
		t.Fatalf("description = %q", report.Description)
	}
}

func TestCurrentRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	w := testWeatherServer(t, func(rw http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			rw.WriteHeader(http.StatusTooManyRequests)
			return
		}
		rw.Write([]byte(`{"main": {"temp": 10, "humidity": 50}, "weather": [{"description": "cloudy"}], "wind": {"speed": 1}}`))
	})

	report, err := w.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
	if report.Description != "cloudy" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestCurrentGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	w := testWeatherServer(t, func(rw http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		rw.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := w.Current(context.Background(), "London"); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if calls.Load() != weatherMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", weatherMaxAttempts, calls.Load())
	}
}

func TestCurrentSurfacesAPIErrorMessage(t *testing.T) {
	w := testWeatherServer(t, func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		rw.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	})

	_, err := w.Current(context.Background(), "Atlantis")
	if err == nil || !strings.Contains(err.Error(), "city not found") {
		t.Fatalf("expected city not found error, got %v", err)
	}
}

func TestCurrentRequiresAPIKey(t *testing.T) {
	w := NewOpenWeather("", time.Second)
	if _, err := w.Current(context.Background(), "Paris"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
