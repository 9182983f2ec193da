package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketcosmos/planetweather/internal/catalog"
)

const openMeteoFixture = `{
	"current_weather": {
		"temperature": 17.3,
		"windspeed": 12.4,
		"winddirection": 230,
		"weathercode": 2,
		"time": "2026-08-30T14:00"
	},
	"daily": {
		"temperature_2m_max": [21.5, 20.1],
		"temperature_2m_min": [11.2, 10.8]
	}
}`

func TestOpenMeteoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") == "" {
			http.Error(w, "missing latitude", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openMeteoFixture))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), 51.47, 0.0)
	p.baseURL = srv.URL

	reading, err := p.Fetch(context.Background(), "earth")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if reading.TemperatureC != 17.3 {
		t.Errorf("temperature = %f, want 17.3", reading.TemperatureC)
	}
	if reading.HighC != 21.5 || reading.LowC != 11.2 {
		t.Errorf("high/low = %f/%f, want today's 21.5/11.2", reading.HighC, reading.LowC)
	}
	if reading.Condition != catalog.ConditionCloudy {
		t.Errorf("condition for code 2 = %s, want cloudy", reading.Condition)
	}
}

func TestOpenMeteoCoverage(t *testing.T) {
	p := NewOpenMeteoProvider(http.DefaultClient, 0, 0)
	if !p.Covers("earth") {
		t.Error("openmeteo must cover earth")
	}
	if p.Covers("venus") {
		t.Error("openmeteo must not cover venus")
	}
}

func TestOpenMeteoConditionMapping(t *testing.T) {
	tests := []struct {
		code int
		want catalog.Condition
	}{
		{0, catalog.ConditionClear},
		{2, catalog.ConditionCloudy},
		{45, catalog.ConditionHazy},
		{61, catalog.ConditionCloudy},
		{95, catalog.ConditionStorm},
	}
	for _, tc := range tests {
		if got := mapOpenMeteoCondition(tc.code); got != tc.want {
			t.Errorf("code %d → %s, want %s", tc.code, got, tc.want)
		}
	}
}

// Server errors exhaust the retry budget and surface as an error so the
// caller can fall back to simulation.
func TestFetchResilienceGivesUp(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), 0, 0)
	p.baseURL = srv.URL
	p.httpCfg.Backoff.InitialInterval = 1 // keep the test fast
	p.httpCfg.Backoff.MaxInterval = 1

	if _, err := p.Fetch(context.Background(), "earth"); err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if hits != p.httpCfg.Backoff.MaxRetries+1 {
		t.Errorf("server hit %d times, want %d", hits, p.httpCfg.Backoff.MaxRetries+1)
	}
}
