package weather

import (
	"time"

	"github.com/pocketcosmos/planetweather/internal/catalog"
)

// Source records where a snapshot's numbers came from.
type Source string

const (
	// SourceSimulated marks a snapshot produced by the diurnal model.
	SourceSimulated Source = "simulated"
	// SourceLive marks a snapshot built from an external provider feed.
	SourceLive Source = "live"
)

// Snapshot is the weather picture for one body at one instant. Value type:
// constructed fresh per query, never mutated afterwards.
//
// PressureBar and VisibilityKm are nil when the body has no atmosphere and
// the field does not apply. Sol is nil for every body except the one that
// counts mission sols. High/Low bound the day's swing only softly: the
// display noise applied to Temperature, High, and Low is independent, so
// Temperature may poke slightly outside the band. That is deliberate
// "living weather" texture, not a bug.
type Snapshot struct {
	BodyID    string    `json:"bodyId"`
	Timestamp time.Time `json:"timestamp"` // always UTC

	TemperatureC float64 `json:"temperatureC"`
	HighC        float64 `json:"highC"`
	LowC         float64 `json:"lowC"`

	WindKph    float64 `json:"windKph"`
	WindDirDeg float64 `json:"windDirDeg"`

	PressureBar  *float64 `json:"pressureBar,omitempty"`
	VisibilityKm *float64 `json:"visibilityKm,omitempty"`

	Condition catalog.Condition `json:"condition"`

	// SolarFluxWm2 is the incident solar flux at the body, W/m².
	SolarFluxWm2 float64 `json:"solarFluxWm2"`

	Source Source `json:"source"`

	// Sol is the mission-elapsed day counter, only for the body that has
	// one.
	Sol *int `json:"sol,omitempty"`
}

// Forecast is an ordered series of snapshots, ascending by timestamp.
type Forecast []Snapshot

// ProviderReading is a single live provider's normalized observation,
// merged with catalog baselines into a Snapshot by the service.
type ProviderReading struct {
	ProviderName string
	BodyID       string
	Timestamp    time.Time

	TemperatureC float64
	HighC        float64
	LowC         float64
	WindKph      float64
	WindDirDeg   float64
	PressureBar  *float64
	Condition    catalog.Condition
}
