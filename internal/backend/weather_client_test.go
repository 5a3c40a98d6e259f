package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

func TestNewClient(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://10.0.0.5:5000/"})

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.baseURL != "http://10.0.0.5:5000" {
		t.Errorf("baseURL = %s, want trailing slash trimmed", client.baseURL)
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}

	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}

	if client.limiter != nil {
		t.Error("limiter should be nil when RequestsPerSecond is zero")
	}
}

func TestNewClient_RateLimited(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://localhost", RequestsPerSecond: 2, Timeout: 5 * time.Second})

	if client.limiter == nil {
		t.Fatal("limiter should be set when RequestsPerSecond > 0")
	}
	if client.limiter.Burst() != 1 {
		t.Errorf("Burst() = %d, want 1", client.limiter.Burst())
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
	}
}

func TestClient_FetchWeather_Flat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("path = %s, want /weather", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "sailor+test@example.com" {
			t.Errorf("email query = %q, want sailor+test@example.com", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header should be application/json")
		}

		data, _ := os.ReadFile("../../testdata/weather_flat_response.json")
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	report, err := client.FetchWeather(context.Background(), "sailor+test@example.com")
	if err != nil {
		t.Fatalf("FetchWeather() error = %v", err)
	}

	s := report.Snapshot
	if s.City != "Chatham" {
		t.Errorf("City = %s, want Chatham", s.City)
	}
	if s.FeelsLike != 21.6 {
		t.Errorf("FeelsLike = %v, want 21.6", s.FeelsLike)
	}
	if s.Conditions.Description != "scattered clouds" {
		t.Errorf("Description = %s, want scattered clouds", s.Conditions.Description)
	}
	if s.UserPreference != models.PreferenceNeutral {
		t.Errorf("UserPreference = %s, want neutral", s.UserPreference)
	}
	if s.ClothingRecommendation.Bottoms != "Chinos" {
		t.Errorf("Bottoms = %s, want Chinos", s.ClothingRecommendation.Bottoms)
	}
	if len(report.Hourly) != 0 {
		t.Errorf("len(Hourly) = %d, want 0 for flat payload", len(report.Hourly))
	}
	if report.FetchedAt.IsZero() {
		t.Error("FetchedAt should be set")
	}
}

func TestClient_FetchWeather_Nested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := os.ReadFile("../../testdata/weather_nested_response.json")
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	report, err := client.FetchWeather(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("FetchWeather() error = %v", err)
	}

	if report.Snapshot.City != "Seattle" {
		t.Errorf("City = %s, want Seattle", report.Snapshot.City)
	}
	if report.Snapshot.UserPreference != models.PreferenceGetsColdEasily {
		t.Errorf("UserPreference = %s, want gets_cold_easily", report.Snapshot.UserPreference)
	}
	if len(report.Hourly) != 4 {
		t.Fatalf("len(Hourly) = %d, want 4", len(report.Hourly))
	}

	// Chronological order is preserved
	wantTimes := []string{"9 AM", "10 AM", "11 AM", "12 PM"}
	for i, entry := range report.Hourly {
		if entry.Time != wantTimes[i] {
			t.Errorf("Hourly[%d].Time = %s, want %s", i, entry.Time, wantTimes[i])
		}
	}
	if report.Hourly[3].FeelsLike != 9.4 {
		t.Errorf("Hourly[3].FeelsLike = %v, want 9.4", report.Hourly[3].FeelsLike)
	}
}

func TestClient_FetchWeather_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"404 not found", http.StatusNotFound},
		{"500 server error", http.StatusInternalServerError},
		{"503 unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.statusCode)
				w.Write([]byte("error"))
			}))
			defer server.Close()

			client := NewClient(Options{BaseURL: server.URL})

			_, err := client.FetchWeather(context.Background(), "user@example.com")
			if !errors.Is(err, ErrCouldNotRetrieve) {
				t.Errorf("error = %v, want ErrCouldNotRetrieve", err)
			}
			if calls != 1 {
				t.Errorf("server called %d times, want exactly 1 (no retry)", calls)
			}
		})
	}
}

func TestClient_FetchWeather_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing conditions", `{"city": "Boston", "feelsLike": 3}`},
		{"missing feelsLike", `{"city": "Boston", "conditions": {"description": "clear sky"}}`},
		{"nested missing conditions", `{"current_weather_data": {"feelsLike": 3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Options{BaseURL: server.URL})

			_, err := client.FetchWeather(context.Background(), "user@example.com")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestClient_FetchWeather_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(Options{BaseURL: baseURL})

	_, err := client.FetchWeather(context.Background(), "user@example.com")
	if err == nil {
		t.Fatal("expected transport error, got nil")
	}
	if errors.Is(err, ErrCouldNotRetrieve) {
		t.Error("transport failures should surface the underlying error, not ErrCouldNotRetrieve")
	}
	if !strings.Contains(err.Error(), strings.TrimPrefix(baseURL, "http://")) {
		t.Errorf("error = %q, want the transport message naming the host", err.Error())
	}
}

func TestClient_FetchWeather_NoSession(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://127.0.0.1:1"})

	_, err := client.FetchWeather(context.Background(), "")
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, want ErrNoSession", err)
	}
}

func TestClient_FetchWeather_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchWeather(ctx, "user@example.com")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
