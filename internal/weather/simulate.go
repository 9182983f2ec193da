package weather

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pocketcosmos/planetweather/internal/astrotime"
	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/common"
	"github.com/pocketcosmos/planetweather/internal/solar"
)

const (
	// Solar flux: the solar constant at 1 AU and the flux at the sun's
	// own surface.
	solarConstantWm2  = 1361.0
	sunSurfaceFluxWm2 = 6.3e7
	earthOrbitMkm     = 149.6

	hourlyForecastLen  = 24
	dailyForecastLen   = 10
	dailyHighLowJitter = 3.0
)

// Rand is the source of display noise. *rand.Rand satisfies it; tests
// inject a fixed source for deterministic runs.
type Rand interface {
	Float64() float64
}

// globalRand adapts the process-wide math/rand/v2 source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Simulator synthesizes weather snapshots from the catalog's baselines and
// the solar geometry model. It holds no mutable state beyond the injected
// random source, so one Simulator serves any number of concurrent callers.
type Simulator struct {
	cat *catalog.Catalog
	rng Rand
}

// NewSimulator builds a Simulator over the given catalog. A nil rng falls
// back to the shared math/rand source.
func NewSimulator(cat *catalog.Catalog, rng Rand) *Simulator {
	if rng == nil {
		rng = globalRand{}
	}
	return &Simulator{cat: cat, rng: rng}
}

// Catalog exposes the simulator's catalog for callers that need body data
// alongside snapshots.
func (s *Simulator) Catalog() *catalog.Catalog { return s.cat }

// jitter returns a uniform random value in [-span, span].
func (s *Simulator) jitter(span float64) float64 {
	return (s.rng.Float64()*2 - 1) * span
}

// baseState is the deterministic part of a simulated snapshot: the diurnal
// model before any display noise.
type baseState struct {
	tempC    float64
	highC    float64
	lowC     float64
	windKph  float64
	sinPhase float64
}

// noiseless evaluates the diurnal model for body at t, longitude 0: mean
// temperature plus the thermal-inertia-damped sinusoidal swing, and the
// convective wind multiplier.
func noiseless(body catalog.Body, t time.Time) baseState {
	solarTime := solar.LocalSolarTime(body, t, 0)

	mean := (body.BaselineHighC + body.BaselineLowC) / 2
	amplitude := (body.BaselineHighC - body.BaselineLowC) / 2
	sinPhase := math.Sin((solarTime - 0.25) * 2 * math.Pi)

	return baseState{
		tempC:    mean + amplitude*sinPhase*body.ThermalInertia,
		highC:    body.BaselineHighC,
		lowC:     body.BaselineLowC,
		windKph:  body.BaselineWindKph * (1 + 0.3*sinPhase),
		sinPhase: sinPhase,
	}
}

// solarFlux returns the incident flux at the body in W/m², scaled by the
// inverse square of its orbital distance and the sun elevation proxy. The
// star reports its own surface flux.
func solarFlux(body catalog.Body, sinPhase float64) float64 {
	if body.Class == catalog.ClassStar || body.DistanceMkm == 0 {
		return sunSurfaceFluxWm2
	}
	au := body.DistanceMkm / earthOrbitMkm
	top := solarConstantWm2 / (au * au)
	return top * math.Max(0, sinPhase)
}

// drawSpaceWeather redraws the star's condition from the fixed burst
// distribution: quiet 70%, solar wind 20%, flare 8%, CME 2%.
func (s *Simulator) drawSpaceWeather() catalog.Condition {
	r := s.rng.Float64()
	switch {
	case r < 0.70:
		return catalog.ConditionQuiet
	case r < 0.90:
		return catalog.ConditionSolarWind
	case r < 0.98:
		return catalog.ConditionSolarFlare
	default:
		return catalog.ConditionCME
	}
}

// solCount returns the mission-elapsed sol number at t for a body with a
// landing epoch, floored and never negative.
func solCount(body catalog.Body, t time.Time) *int {
	if body.SolEpochJD == nil {
		return nil
	}
	elapsedHours := (astrotime.JulianDay(t) - *body.SolEpochJD) * 24
	sols := int(math.Floor(elapsedHours / body.DayLengthHours()))
	if sols < 0 {
		sols = 0
	}
	return &sols
}

// Simulate produces a weather snapshot for body at t. Total over its input
// domain: no (body, instant) pair fails.
//
// Display noise is applied independently to temperature (±0.5°), high and
// low (±1° each), wind speed (±10%), wind direction (±15°), and visibility
// (±10%), so the instantaneous temperature is not guaranteed to stay inside
// the reported high/low band.
func (s *Simulator) Simulate(body catalog.Body, t time.Time) Snapshot {
	base := noiseless(body, t)

	snap := Snapshot{
		BodyID:       body.ID,
		Timestamp:    t.UTC(),
		TemperatureC: base.tempC + s.jitter(0.5),
		HighC:        base.highC + s.jitter(1.0),
		LowC:         base.lowC + s.jitter(1.0),
		WindKph:      base.windKph * (1 + s.jitter(0.10)),
		WindDirDeg:   windDirWrap(body.BaselineWindDir + s.jitter(15.0)),
		Condition:    body.BaselineCond,
		SolarFluxWm2: solarFlux(body, base.sinPhase),
		Source:       SourceSimulated,
		Sol:          solCount(body, t),
	}

	if body.PressureBar != nil {
		p := *body.PressureBar
		snap.PressureBar = &p
	}
	if body.VisibilityKm != nil {
		v := *body.VisibilityKm * (1 + s.jitter(0.10))
		snap.VisibilityKm = &v
	}

	if body.Class == catalog.ClassStar {
		snap.Condition = s.drawSpaceWeather()
	}

	return snap
}

// SimulateID resolves a body id through the catalog before simulating.
// Unknown ids surface as a lookup failure rather than defaulting.
func (s *Simulator) SimulateID(bodyID string, t time.Time) (Snapshot, error) {
	body, ok := s.cat.Lookup(bodyID)
	if !ok {
		return Snapshot{}, fmt.Errorf("simulate %q: %w", bodyID, catalog.ErrUnknownBody)
	}
	return s.Simulate(body, t), nil
}

// HourlyForecast returns 24 snapshots stepping forward one planetary hour
// (1/24 of the body's day) at a time from start. Each call recomputes from
// scratch; no state is shared between calls.
func (s *Simulator) HourlyForecast(body catalog.Body, start time.Time) Forecast {
	stepHours := body.DayLengthHours() / 24.0
	step := time.Duration(stepHours * float64(time.Hour))

	out := make(Forecast, 0, hourlyForecastLen)
	for i := 0; i < hourlyForecastLen; i++ {
		out = append(out, s.Simulate(body, start.Add(time.Duration(i)*step)))
	}
	return out
}

// DailyForecast returns 10 snapshots, one per Earth day from start's date,
// each sampled at 12:00 UTC (local noon at longitude 0) with an extra ±3°
// of independent noise on the high and low.
func (s *Simulator) DailyForecast(body catalog.Body, start time.Time) Forecast {
	start = start.UTC()
	noon := time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, time.UTC)

	out := make(Forecast, 0, dailyForecastLen)
	for i := 0; i < dailyForecastLen; i++ {
		snap := s.Simulate(body, noon.AddDate(0, 0, i))
		snap.HighC += s.jitter(dailyHighLowJitter)
		snap.LowC += s.jitter(dailyHighLowJitter)
		out = append(out, snap)
	}
	return out
}

// windDirWrap keeps a jittered direction inside [0,360).
func windDirWrap(deg float64) float64 {
	return common.WrapFrac(deg/360.0) * 360.0
}
