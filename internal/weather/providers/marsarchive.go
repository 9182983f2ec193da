package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/weather"
)

// MarsArchiveProvider fetches Mars surface weather from the NASA InSight
// feed. The mission stopped producing fresh sols, so the feed is a
// historical record: the provider reports the newest archived sol it can
// get, which is exactly the "pattern-based" data the app wants for Mars.
type MarsArchiveProvider struct {
	name    string
	baseURL string
	apiKey  string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewMarsArchiveProvider builds the Mars provider. An empty apiKey uses
// NASA's rate-limited demo key.
func NewMarsArchiveProvider(client *http.Client, apiKey string) *MarsArchiveProvider {
	if apiKey == "" {
		apiKey = "DEMO_KEY"
	}
	return &MarsArchiveProvider{
		name:    "mars-archive",
		baseURL: "https://api.nasa.gov/insight_weather/",
		apiKey:  apiKey,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("mars-archive"),
	}
}

func (p *MarsArchiveProvider) Name() string { return p.name }

// Covers: this feed only describes Mars.
func (p *MarsArchiveProvider) Covers(bodyID string) bool { return bodyID == "mars" }

func (p *MarsArchiveProvider) Fetch(ctx context.Context, bodyID string) (weather.ProviderReading, error) {
	if !p.Covers(bodyID) {
		return weather.ProviderReading{}, fmt.Errorf("mars-archive does not cover body %q", bodyID)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("api_key", p.apiKey)
		values.Set("feedtype", "json")
		values.Set("ver", "1.0")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.ProviderReading{}, err
	}
	defer resp.Body.Close()

	// The feed is a map keyed by sol number with a sol_keys index:
	// {"sol_keys": ["675", ...], "675": {"AT": {...}, "HWS": {...}, ...}}
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.ProviderReading{}, err
	}

	var solKeys []string
	if keys, ok := raw["sol_keys"]; ok {
		if err := json.Unmarshal(keys, &solKeys); err != nil {
			return weather.ProviderReading{}, err
		}
	}
	if len(solKeys) == 0 {
		return weather.ProviderReading{}, fmt.Errorf("insight feed has no sols")
	}

	// Newest sol wins.
	sort.Slice(solKeys, func(i, j int) bool {
		a, _ := strconv.Atoi(solKeys[i])
		b, _ := strconv.Atoi(solKeys[j])
		return a < b
	})
	latest := solKeys[len(solKeys)-1]

	var sol struct {
		AT struct {
			Av float64 `json:"av"`
			Mn float64 `json:"mn"`
			Mx float64 `json:"mx"`
		} `json:"AT"`
		HWS struct {
			Av float64 `json:"av"`
		} `json:"HWS"`
		PRE struct {
			Av float64 `json:"av"` // pascals
		} `json:"PRE"`
		WD struct {
			MostCommon struct {
				CompassDegrees float64 `json:"compass_degrees"`
			} `json:"most_common"`
		} `json:"WD"`
		LastUTC string `json:"Last_UTC"`
	}
	if err := json.Unmarshal(raw[latest], &sol); err != nil {
		return weather.ProviderReading{}, err
	}

	ts, err := time.Parse(time.RFC3339, sol.LastUTC)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	reading := weather.ProviderReading{
		ProviderName: p.name,
		BodyID:       bodyID,
		Timestamp:    ts,
		TemperatureC: sol.AT.Av,
		HighC:        sol.AT.Mx,
		LowC:         sol.AT.Mn,
		WindKph:      sol.HWS.Av * 3.6, // feed reports m/s
		WindDirDeg:   sol.WD.MostCommon.CompassDegrees,
		Condition:    catalog.ConditionDust,
	}

	if sol.PRE.Av > 0 {
		bar := sol.PRE.Av / 100000.0
		reading.PressureBar = &bar
	}

	return reading, nil
}
