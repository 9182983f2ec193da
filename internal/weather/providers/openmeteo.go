package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/weather"
)

// OpenMeteoProvider fetches real current Earth weather from Open-Meteo for
// a fixed observation point. No API key required.
type OpenMeteoProvider struct {
	name     string
	baseURL  string
	lat, lon float64
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider builds the Earth provider observing lat/lon.
func NewOpenMeteoProvider(client *http.Client, lat, lon float64) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		lat:     lat,
		lon:     lon,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string { return p.name }

// Covers: Open-Meteo only knows about Earth.
func (p *OpenMeteoProvider) Covers(bodyID string) bool { return bodyID == "earth" }

func (p *OpenMeteoProvider) Fetch(ctx context.Context, bodyID string) (weather.ProviderReading, error) {
	if !p.Covers(bodyID) {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo does not cover body %q", bodyID)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", p.lat))
		values.Set("longitude", fmt.Sprintf("%f", p.lon))
		values.Set("current_weather", "true")
		values.Set("daily", "temperature_2m_max,temperature_2m_min")
		values.Set("timezone", "UTC")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.ProviderReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WindDir     float64 `json:"winddirection"`
			Time        string  `json:"time"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
		Daily struct {
			TempMax []float64 `json:"temperature_2m_max"`
			TempMin []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ProviderReading{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.CurrentWeather.Time)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	reading := weather.ProviderReading{
		ProviderName: p.name,
		BodyID:       bodyID,
		Timestamp:    ts,
		TemperatureC: payload.CurrentWeather.Temperature,
		WindKph:      payload.CurrentWeather.WindSpeed,
		WindDirDeg:   payload.CurrentWeather.WindDir,
		Condition:    mapOpenMeteoCondition(payload.CurrentWeather.WeatherCode),
	}
	if len(payload.Daily.TempMax) > 0 && len(payload.Daily.TempMin) > 0 {
		reading.HighC = payload.Daily.TempMax[0]
		reading.LowC = payload.Daily.TempMin[0]
	}

	return reading, nil
}

// mapOpenMeteoCondition collapses Open-Meteo weather codes into the
// catalog's condition categories (simplified).
func mapOpenMeteoCondition(code int) catalog.Condition {
	switch {
	case code == 0:
		return catalog.ConditionClear
	case code >= 1 && code <= 3:
		return catalog.ConditionCloudy
	case code >= 45 && code <= 48:
		return catalog.ConditionHazy
	case (code >= 51 && code <= 67) || (code >= 71 && code <= 82):
		return catalog.ConditionCloudy
	case code >= 95:
		return catalog.ConditionStorm
	default:
		return catalog.ConditionClear
	}
}
