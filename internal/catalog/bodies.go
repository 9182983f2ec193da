package catalog

// Physical constants are real solar-system values where they matter for the
// simulation (rotation, orbits, temperatures) and display-oriented
// approximations elsewhere (visual scale, baseline conditions).

func bar(v float64) *float64 { return &v }
func km(v float64) *float64  { return &v }

// marsSolEpochJD is the InSight landing, 2018-11-26T19:53Z, from which the
// Mars sol counter runs.
var marsSolEpochJD = 2458449.3285

// Default returns the stock catalog: the sun plus ten bodies.
func Default() *Catalog {
	return New([]Body{
		{
			ID: "sun", Name: "Sun", Class: ClassStar,
			GravityG: 28.0, DistanceMkm: 0, MeanTempC: 5505,
			RotationPeriodHours: 609.12, OrbitalPeriodDays: 0,
			BaselineHighC: 5505, BaselineLowC: 5505,
			BaselineWindKph: 1440, BaselineWindDir: 0, // solar wind at the surface
			BaselineCond:        ConditionQuiet,
			InitialLongitudeDeg: 0, AxialTiltRad: 0.1265, VisualScale: 3.0,
			ThermalInertia: 0,
		},
		{
			ID: "mercury", Name: "Mercury", Class: ClassTerrestrial,
			GravityG: 0.38, DistanceMkm: 57.9, MeanTempC: 167,
			RotationPeriodHours: 1407.6, OrbitalPeriodDays: 87.97,
			BaselineHighC: 427, BaselineLowC: -173,
			BaselineWindKph: 0, BaselineWindDir: 0,
			BaselineCond:        ConditionClear,
			InitialLongitudeDeg: 252.3, AxialTiltRad: 0.0006, VisualScale: 0.35,
			ThermalInertia: 0.95,
		},
		{
			ID: "venus", Name: "Venus", Class: ClassTerrestrial,
			GravityG: 0.91, DistanceMkm: 108.2, MeanTempC: 464,
			RotationPeriodHours: -5832.5, OrbitalPeriodDays: 224.7,
			PressureBar:   bar(92.0),
			BaselineHighC: 465, BaselineLowC: 462,
			BaselineWindKph: 5, BaselineWindDir: 270,
			BaselineCond: ConditionAcidRain,
			VisibilityKm: km(0.3),
			InitialLongitudeDeg: 181.9, AxialTiltRad: 0.0462, VisualScale: 0.5,
			ThermalInertia: 0.05,
		},
		{
			ID: "earth", Name: "Earth", Class: ClassTerrestrial,
			GravityG: 1.0, DistanceMkm: 149.6, MeanTempC: 15,
			RotationPeriodHours: 23.93, OrbitalPeriodDays: 365.25,
			PressureBar:   bar(1.013),
			BaselineHighC: 18, BaselineLowC: 8,
			BaselineWindKph: 15, BaselineWindDir: 225,
			BaselineCond: ConditionCloudy,
			VisibilityKm: km(10),
			InitialLongitudeDeg: 100.5, AxialTiltRad: 0.4091, VisualScale: 0.5,
			ThermalInertia: 0.35,
		},
		{
			ID: "moon", Name: "Moon", Class: ClassTerrestrial,
			GravityG: 0.166, DistanceMkm: 0.384, MeanTempC: -20,
			RotationPeriodHours: 655.7, OrbitalPeriodDays: 27.32,
			BaselineHighC: 106, BaselineLowC: -183,
			BaselineWindKph: 0, BaselineWindDir: 0,
			BaselineCond:        ConditionClear,
			InitialLongitudeDeg: 0, AxialTiltRad: 0.0269, VisualScale: 0.27,
			ThermalInertia: 0.95,
		},
		{
			ID: "mars", Name: "Mars", Class: ClassTerrestrial,
			GravityG: 0.38, DistanceMkm: 227.9, MeanTempC: -65,
			RotationPeriodHours: 24.62, OrbitalPeriodDays: 686.97,
			PressureBar:   bar(0.006),
			BaselineHighC: -20, BaselineLowC: -73,
			BaselineWindKph: 20, BaselineWindDir: 135,
			BaselineCond: ConditionDust,
			VisibilityKm: km(8),
			InitialLongitudeDeg: 355.4, AxialTiltRad: 0.4397, VisualScale: 0.4,
			ThermalInertia: 0.6,
			SolEpochJD:     &marsSolEpochJD,
		},
		{
			ID: "jupiter", Name: "Jupiter", Class: ClassGasGiant,
			GravityG: 2.53, DistanceMkm: 778.5, MeanTempC: -110,
			RotationPeriodHours: 9.93, OrbitalPeriodDays: 4332.59,
			PressureBar:   bar(1.0), // cloud-top reference level
			BaselineHighC: -108, BaselineLowC: -112,
			BaselineWindKph: 430, BaselineWindDir: 90,
			BaselineCond: ConditionStorm,
			VisibilityKm: km(2),
			InitialLongitudeDeg: 34.4, AxialTiltRad: 0.0546, VisualScale: 1.4,
			ThermalInertia: 0.05,
		},
		{
			ID: "saturn", Name: "Saturn", Class: ClassGasGiant,
			GravityG: 1.07, DistanceMkm: 1432.0, MeanTempC: -140,
			RotationPeriodHours: 10.7, OrbitalPeriodDays: 10759.22,
			PressureBar:   bar(1.0),
			BaselineHighC: -138, BaselineLowC: -142,
			BaselineWindKph: 1800, BaselineWindDir: 90,
			BaselineCond: ConditionHazy,
			VisibilityKm: km(3),
			InitialLongitudeDeg: 50.1, AxialTiltRad: 0.4665, VisualScale: 1.2,
			ThermalInertia: 0.05,
		},
		{
			ID: "uranus", Name: "Uranus", Class: ClassIceGiant,
			GravityG: 0.89, DistanceMkm: 2867.0, MeanTempC: -195,
			RotationPeriodHours: -17.24, OrbitalPeriodDays: 30688.5,
			PressureBar:   bar(1.0),
			BaselineHighC: -193, BaselineLowC: -197,
			BaselineWindKph: 900, BaselineWindDir: 180,
			BaselineCond: ConditionHazy,
			VisibilityKm: km(5),
			InitialLongitudeDeg: 314.1, AxialTiltRad: 1.7064, VisualScale: 0.8,
			ThermalInertia: 0.05,
		},
		{
			ID: "neptune", Name: "Neptune", Class: ClassIceGiant,
			GravityG: 1.14, DistanceMkm: 4515.0, MeanTempC: -200,
			RotationPeriodHours: 16.11, OrbitalPeriodDays: 60182,
			PressureBar:   bar(1.0),
			BaselineHighC: -198, BaselineLowC: -202,
			BaselineWindKph: 2100, BaselineWindDir: 135,
			BaselineCond: ConditionStorm,
			VisibilityKm: km(4),
			InitialLongitudeDeg: 304.9, AxialTiltRad: 0.4943, VisualScale: 0.8,
			ThermalInertia: 0.05,
		},
		{
			ID: "pluto", Name: "Pluto", Class: ClassDwarf,
			GravityG: 0.063, DistanceMkm: 5906.4, MeanTempC: -225,
			RotationPeriodHours: -153.3, OrbitalPeriodDays: 90560,
			PressureBar:   bar(0.00001),
			BaselineHighC: -218, BaselineLowC: -233,
			BaselineWindKph: 10, BaselineWindDir: 0,
			BaselineCond: ConditionMethaneIce,
			VisibilityKm: km(50),
			InitialLongitudeDeg: 238.9, AxialTiltRad: 2.1386, VisualScale: 0.2,
			ThermalInertia: 0.8,
		},
	})
}
