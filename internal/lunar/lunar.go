// Package lunar models the phase of Earth's moon from the mean synodic
// month. Good to a day or so, which is all the display needs.
package lunar

import (
	"math"
	"time"

	"github.com/pocketcosmos/planetweather/internal/astrotime"
	"github.com/pocketcosmos/planetweather/internal/common"
)

// SynodicMonthDays is the mean time between successive new moons.
const SynodicMonthDays = 29.53058867

// referenceNewMoonJD is the new moon of 2000-01-06T18:14Z.
const referenceNewMoonJD = 2451550.26

// PhaseName is one of the eight named phase buckets.
type PhaseName string

const (
	NewMoon        PhaseName = "new_moon"
	WaxingCrescent PhaseName = "waxing_crescent"
	FirstQuarter   PhaseName = "first_quarter"
	WaxingGibbous  PhaseName = "waxing_gibbous"
	FullMoon       PhaseName = "full_moon"
	WaningGibbous  PhaseName = "waning_gibbous"
	LastQuarter    PhaseName = "last_quarter"
	WaningCrescent PhaseName = "waning_crescent"
)

// State is the derived lunar picture at one instant.
type State struct {
	Phase        float64   `json:"phase"`        // [0,1); 0 = new, 0.5 = full
	Illumination float64   `json:"illumination"` // percent, [0,100]
	Name         PhaseName `json:"name"`
	NextNew      time.Time `json:"nextNew"`
	NextFull     time.Time `json:"nextFull"`
}

// Phase returns the phase fraction at t in [0,1), measured from the
// reference new moon. Instants before the reference wrap up into range.
func Phase(t time.Time) float64 {
	elapsed := astrotime.JulianDay(t) - referenceNewMoonJD
	return common.WrapFrac(elapsed / SynodicMonthDays)
}

// IlluminationPercent returns the illuminated fraction of the disc as a
// percentage in [0,100].
func IlluminationPercent(t time.Time) float64 {
	return (1 - math.Cos(Phase(t)*2*math.Pi)) / 2 * 100
}

// Name buckets the phase fraction into the eight named phases. The
// boundaries sit at the odd sixteenths of the cycle so each principal phase
// (new, quarters, full) owns a window centred on its exact fraction;
// together the buckets tile [0,1) with no gap or overlap.
func Name(t time.Time) PhaseName {
	return nameForPhase(Phase(t))
}

func nameForPhase(p float64) PhaseName {
	switch {
	case p < 0.0625:
		return NewMoon
	case p < 0.1875:
		return WaxingCrescent
	case p < 0.3125:
		return FirstQuarter
	case p < 0.4375:
		return WaxingGibbous
	case p < 0.5625:
		return FullMoon
	case p < 0.6875:
		return WaningGibbous
	case p < 0.8125:
		return LastQuarter
	case p < 0.9375:
		return WaningCrescent
	default:
		return NewMoon
	}
}

// NextNew estimates the instant of the next new moon after t.
func NextNew(t time.Time) time.Time {
	daysUntil := (1 - Phase(t)) * SynodicMonthDays
	return t.Add(time.Duration(daysUntil * 24 * float64(time.Hour)))
}

// NextFull estimates the instant of the next full moon after t.
func NextFull(t time.Time) time.Time {
	p := Phase(t)
	var daysUntil float64
	if p < 0.5 {
		daysUntil = (0.5 - p) * SynodicMonthDays
	} else {
		daysUntil = (1.5 - p) * SynodicMonthDays
	}
	return t.Add(time.Duration(daysUntil * 24 * float64(time.Hour)))
}

// At computes the full lunar state at t.
func At(t time.Time) State {
	p := Phase(t)
	return State{
		Phase:        p,
		Illumination: (1 - math.Cos(p*2*math.Pi)) / 2 * 100,
		Name:         nameForPhase(p),
		NextNew:      NextNew(t),
		NextFull:     NextFull(t),
	}
}
