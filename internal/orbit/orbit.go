// Package orbit computes a body's position on its orbital plane and its
// axial spin angle as pure functions of time. Orbits are deliberately
// circular: the app places bodies at an artistic visual radius, so
// eccentricity would buy nothing but drift against the displayed distance.
package orbit

import (
	"math"
	"time"

	"github.com/pocketcosmos/planetweather/internal/astrotime"
	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/common"
)

// State is a body's derived placement at one instant. X and Z span the
// orbital plane; the vertical axis is fixed at zero in this simplified
// model.
type State struct {
	X            float64 `json:"x"`
	Z            float64 `json:"z"`
	SpinAngleRad float64 `json:"spinAngleRad"` // [0, 2π)
}

// Position returns the (x, z) placement for body at t, scaled to the given
// visual orbit radius. The primary star sits at the origin regardless of
// radius.
func Position(body catalog.Body, t time.Time, visualOrbitRadius float64) (x, z float64) {
	if body.OrbitalPeriodDays == 0 {
		return 0, 0
	}

	daysElapsed := astrotime.DaysSinceEpoch(t)
	angleDeg := body.InitialLongitudeDeg + (daysElapsed/body.OrbitalPeriodDays)*360.0
	angle := angleDeg * math.Pi / 180.0

	return math.Cos(angle) * visualOrbitRadius, math.Sin(angle) * visualOrbitRadius
}

// SpinAngle returns the body's axial rotation angle at t, wrapped to
// [0, 2π). The sign of the rotation period drives the spin direction, so a
// retrograde body winds backwards but the result still wraps up into range.
// A zero rotation period yields 0 rather than dividing by zero.
func SpinAngle(body catalog.Body, t time.Time) float64 {
	if body.RotationPeriodHours == 0 {
		return 0
	}

	rotationPeriodDays := body.RotationPeriodHours / 24.0
	direction := 1.0
	if rotationPeriodDays < 0 {
		direction = -1.0
		rotationPeriodDays = -rotationPeriodDays
	}

	rotations := astrotime.DaysSinceEpoch(t) / rotationPeriodDays
	return common.WrapAngle(rotations * 2 * math.Pi * direction)
}

// At bundles Position and SpinAngle into one State for scene placement.
func At(body catalog.Body, t time.Time, visualOrbitRadius float64) State {
	x, z := Position(body, t, visualOrbitRadius)
	return State{X: x, Z: z, SpinAngleRad: SpinAngle(body, t)}
}
