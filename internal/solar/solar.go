// Package solar derives local solar time, day/night state, and a sun
// elevation proxy from a body's rotation parameters.
//
// The day/night window is a fixed symmetric [0.25, 0.75) slice of the local
// day for every body. Axial tilt and eccentricity do not widen or narrow it;
// the rest of the simulation (elevation, diurnal temperature) is built on
// that boundary, so changing it is a product decision, not a cleanup.
package solar

import (
	"math"
	"time"

	"github.com/pocketcosmos/planetweather/internal/astrotime"
	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/common"
)

// LocalSolarTime returns the fraction of the body's local day at t for the
// given longitude, in [0,1). 0.0 is local midnight, 0.5 local noon. The
// J2000 epoch is defined as local noon at longitude 0, matching its
// 12:00 UTC anchor. Longitude may be any value, including negative or
// beyond 360; it folds into the day fraction.
func LocalSolarTime(body catalog.Body, t time.Time, longitudeDeg float64) float64 {
	dayHours := body.DayLengthHours()
	if dayHours == 0 {
		return 0.5 // non-rotating body: pinned at noon
	}

	elapsedHours := astrotime.DaysSinceEpoch(t) * 24.0
	frac := elapsedHours/dayHours + 0.5 + longitudeDeg/360.0
	return common.WrapFrac(frac)
}

// IsDaytime reports whether t falls in the body's local day window
// [0.25, 0.75) at the given longitude.
func IsDaytime(body catalog.Body, t time.Time, longitudeDeg float64) bool {
	st := LocalSolarTime(body, t, longitudeDeg)
	return st >= 0.25 && st < 0.75
}

// SunElevation returns a sinusoidal elevation proxy in degrees, in
// [-90, 90]. Zero crossings coincide with the [0.25, 0.75) day window by
// construction; this is not a true geometric elevation angle.
func SunElevation(body catalog.Body, t time.Time, longitudeDeg float64) float64 {
	st := LocalSolarTime(body, t, longitudeDeg)
	return math.Sin((st-0.25)*2*math.Pi) * 90.0
}

// Geometry is the full solar picture for one (body, instant, longitude)
// query, as served to the presentation layer.
type Geometry struct {
	SolarTime    float64 `json:"solarTime"` // [0,1)
	Daytime      bool    `json:"daytime"`
	ElevationDeg float64 `json:"elevationDeg"`
}

// At computes the solar geometry for body at t and longitude.
func At(body catalog.Body, t time.Time, longitudeDeg float64) Geometry {
	st := LocalSolarTime(body, t, longitudeDeg)
	return Geometry{
		SolarTime:    st,
		Daytime:      st >= 0.25 && st < 0.75,
		ElevationDeg: math.Sin((st-0.25)*2*math.Pi) * 90.0,
	}
}
