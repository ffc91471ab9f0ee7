package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentFromUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("current"); got != "temperature_2m,relative_humidity_2m,weather_code" {
			t.Errorf("current param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":31.6,"relative_humidity_2m":74,"weather_code":61}}`))
	}))
	defer server.Close()

	c := NewClient(nil)
	c.baseURL = server.URL

	report := c.Current(context.Background(), 19.0760, 72.8777)

	if report.Temperature != 32 {
		t.Errorf("temperature = %d, want rounded 32", report.Temperature)
	}
	if report.Condition != "Light Rain" {
		t.Errorf("condition = %q", report.Condition)
	}
	if report.Icon != "rainy" {
		t.Errorf("icon = %q", report.Icon)
	}
	if report.Location != "Your Location" {
		t.Errorf("location = %q", report.Location)
	}
}

func TestCurrentFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(nil)
	c.baseURL = server.URL

	report := c.Current(context.Background(), 19.0760, 72.8777)

	if report != FallbackReport() {
		t.Errorf("report = %+v, want Mumbai fallback", report)
	}
}

func TestConditionFor(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{2, "Partly Cloudy"},
		{95, "Thunderstorm"},
		{42, "Unknown"},
	}
	for _, tt := range tests {
		if got := conditionFor(tt.code); got != tt.want {
			t.Errorf("conditionFor(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "partly-cloudy"},
		{45, "partly-cloudy"},
		{61, "rainy"},
		{82, "stormy"},
		{95, "stormy"},
	}
	for _, tt := range tests {
		if got := iconFor(tt.code); got != tt.want {
			t.Errorf("iconFor(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
