// Package catalog holds the static physical and orbital constants for every
// body the simulation knows about. The catalog is built once at startup and
// never mutated, so it is safe to share across goroutines without locks.
package catalog

import "errors"

// ErrUnknownBody is returned when a query references an id the catalog does
// not contain. Callers must be able to tell "no such body" apart from "body
// exists but has no atmosphere", so lookups never default silently.
var ErrUnknownBody = errors.New("unknown celestial body")

// BodyClass is a coarse physical classification of a body.
type BodyClass string

const (
	ClassStar        BodyClass = "star"
	ClassTerrestrial BodyClass = "terrestrial"
	ClassGasGiant    BodyClass = "gas_giant"
	ClassIceGiant    BodyClass = "ice_giant"
	ClassDwarf       BodyClass = "dwarf_planet"
)

// Condition is a normalized high-level weather condition category.
type Condition string

const (
	ConditionClear      Condition = "clear"
	ConditionCloudy     Condition = "cloudy"
	ConditionHazy       Condition = "hazy"
	ConditionDust       Condition = "dust"
	ConditionStorm      Condition = "storm"
	ConditionAcidRain   Condition = "acid_rain"
	ConditionMethaneIce Condition = "methane_ice"

	// Space-weather categories, used only by the star.
	ConditionQuiet      Condition = "quiet"
	ConditionSolarWind  Condition = "solar_wind"
	ConditionSolarFlare Condition = "solar_flare"
	ConditionCME        Condition = "coronal_mass_ejection"
)

// Body is the immutable record of one celestial body.
//
// RotationPeriodHours is signed: a negative value encodes retrograde spin
// (Venus, Uranus, Pluto). OrbitalPeriodDays is zero only for the primary
// star. PressureBar and VisibilityKm are nil when the body has no atmosphere;
// SolEpochJD is non-nil only for the body that counts mission sols.
type Body struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Class       BodyClass `json:"class"`
	GravityG    float64   `json:"gravityG"`    // surface gravity, Earth = 1.0
	DistanceMkm float64   `json:"distanceMkm"` // mean distance from the sun, millions of km
	MeanTempC   float64   `json:"meanTempC"`

	RotationPeriodHours float64 `json:"rotationPeriodHours"` // signed; negative = retrograde
	OrbitalPeriodDays   float64 `json:"orbitalPeriodDays"`   // 0 for the star

	PressureBar *float64 `json:"pressureBar,omitempty"` // nil = no atmosphere

	BaselineHighC   float64   `json:"baselineHighC"`
	BaselineLowC    float64   `json:"baselineLowC"`
	BaselineWindKph float64   `json:"baselineWindKph"`
	BaselineWindDir float64   `json:"baselineWindDirDeg"` // degrees, 0 = north
	BaselineCond    Condition `json:"baselineCondition"`

	VisibilityKm *float64 `json:"visibilityKm,omitempty"` // nil = not applicable

	InitialLongitudeDeg float64 `json:"initialLongitudeDeg"` // orbital phase offset at J2000
	AxialTiltRad        float64 `json:"axialTiltRad"`
	VisualScale         float64 `json:"visualScale"`

	// ThermalInertia in [0,1] damps the diurnal temperature swing: near 0
	// for thick-atmosphere or internally heated bodies, near 1 for airless
	// rock.
	ThermalInertia float64 `json:"thermalInertia"`

	// SolEpochJD is the Julian Day of the landing epoch from which mission
	// sols are counted. Only Mars carries one.
	SolEpochJD *float64 `json:"solEpochJD,omitempty"`
}

// HasAtmosphere reports whether the body has a meaningful atmosphere.
func (b Body) HasAtmosphere() bool {
	return b.PressureBar != nil
}

// Retrograde reports whether the body spins opposite its orbital direction.
func (b Body) Retrograde() bool {
	return b.RotationPeriodHours < 0
}

// DayLengthHours returns the body's day length in Earth hours, always
// positive. Zero only for a non-rotating body.
func (b Body) DayLengthHours() float64 {
	if b.RotationPeriodHours < 0 {
		return -b.RotationPeriodHours
	}
	return b.RotationPeriodHours
}

// Catalog is a read-only index of bodies by id.
type Catalog struct {
	byID  map[string]Body
	order []string
}

// New builds a catalog from a list of bodies, preserving their order.
func New(bodies []Body) *Catalog {
	c := &Catalog{byID: make(map[string]Body, len(bodies))}
	for _, b := range bodies {
		c.byID[b.ID] = b
		c.order = append(c.order, b.ID)
	}
	return c
}

// Lookup returns the body for id. The boolean is false when the catalog has
// no such body; callers should surface that as a not-found result rather
// than substituting a default.
func (c *Catalog) Lookup(id string) (Body, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Bodies returns all bodies in catalog order. The returned slice is a copy.
func (c *Catalog) Bodies() []Body {
	out := make([]Body, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of bodies in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}
