package weather

import (
	"math"
	"time"

	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/solar"
)

// MergeReading turns a live provider reading into a Snapshot, filling the
// fields the feed does not carry from the body's catalog baselines. Live
// feeds report point observations; high/low fall back to the baselines when
// the provider left them zero, and solar flux is always recomputed locally
// since no feed supplies it.
func MergeReading(body catalog.Body, r ProviderReading) Snapshot {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()

	snap := Snapshot{
		BodyID:       body.ID,
		Timestamp:    ts,
		TemperatureC: r.TemperatureC,
		HighC:        r.HighC,
		LowC:         r.LowC,
		WindKph:      r.WindKph,
		WindDirDeg:   r.WindDirDeg,
		Condition:    r.Condition,
		Source:       SourceLive,
		Sol:          solCount(body, ts),
	}

	if snap.HighC == 0 && snap.LowC == 0 {
		snap.HighC = body.BaselineHighC
		snap.LowC = body.BaselineLowC
	}
	if snap.Condition == "" {
		snap.Condition = body.BaselineCond
	}

	if r.PressureBar != nil {
		p := *r.PressureBar
		snap.PressureBar = &p
	} else if body.PressureBar != nil {
		p := *body.PressureBar
		snap.PressureBar = &p
	}
	if body.VisibilityKm != nil {
		v := *body.VisibilityKm
		snap.VisibilityKm = &v
	}

	st := solar.LocalSolarTime(body, ts, 0)
	snap.SolarFluxWm2 = solarFlux(body, math.Sin((st-0.25)*2*math.Pi))

	return snap
}
