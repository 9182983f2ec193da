package lunar

import (
	"math"
	"testing"
	"time"
)

func TestPhaseAtReferenceNewMoon(t *testing.T) {
	ref := time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)
	p := Phase(ref)
	// The reference JD is rounded to two decimals, so allow a small slop.
	if p > 0.001 && p < 0.999 {
		t.Errorf("phase at reference new moon = %f, want ≈0", p)
	}
	if Name(ref) != NewMoon {
		t.Errorf("phase name at reference = %s, want new_moon", Name(ref))
	}
}

func TestPhaseInRange(t *testing.T) {
	instants := []time.Time{
		time.Date(1988, 4, 1, 0, 0, 0, 0, time.UTC), // before reference
		time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, in := range instants {
		if p := Phase(in); p < 0 || p >= 1 {
			t.Errorf("Phase(%v) = %f outside [0,1)", in, p)
		}
	}
}

func TestIllumination(t *testing.T) {
	ref := time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

	if ill := IlluminationPercent(ref); ill > 0.1 {
		t.Errorf("new moon illumination = %f%%, want ≈0", ill)
	}

	halfMonth := time.Duration(SynodicMonthDays / 2 * 24 * float64(time.Hour))
	full := ref.Add(halfMonth)
	if ill := IlluminationPercent(full); ill < 99.9 {
		t.Errorf("full moon illumination = %f%%, want ≈100", ill)
	}
}

// Every phase fraction in [0,1) must land in exactly one bucket; the switch
// makes overlap impossible, so the real risk is a gap. Sweep densely and
// also hit the exact boundaries.
func TestPhaseBucketsTileTheCycle(t *testing.T) {
	seen := map[PhaseName]bool{}
	for i := 0; i < 10000; i++ {
		p := float64(i) / 10000.0
		name := nameForPhase(p)
		if name == "" {
			t.Fatalf("no bucket for phase %f", p)
		}
		seen[name] = true
	}
	if len(seen) != 8 {
		t.Errorf("sweep hit %d buckets, want 8 (%v)", len(seen), seen)
	}

	boundaries := []struct {
		p    float64
		want PhaseName
	}{
		{0.0, NewMoon},
		{0.0625, WaxingCrescent},
		{0.1875, FirstQuarter},
		{0.3125, WaxingGibbous},
		{0.4375, FullMoon},
		{0.5625, WaningGibbous},
		{0.6875, LastQuarter},
		{0.8125, WaningCrescent},
		{0.9375, NewMoon},
	}
	for _, tc := range boundaries {
		if got := nameForPhase(tc.p); got != tc.want {
			t.Errorf("nameForPhase(%f) = %s, want %s", tc.p, got, tc.want)
		}
	}
}

func TestNextEventsAreInTheFuture(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	nn := NextNew(now)
	nf := NextFull(now)
	if !nn.After(now) {
		t.Errorf("NextNew %v not after %v", nn, now)
	}
	if !nf.After(now) {
		t.Errorf("NextFull %v not after %v", nf, now)
	}

	month := time.Duration(SynodicMonthDays * 24 * float64(time.Hour))
	if nn.Sub(now) > month {
		t.Errorf("next new moon more than a synodic month away: %v", nn.Sub(now))
	}
	if nf.Sub(now) > month {
		t.Errorf("next full moon more than a synodic month away: %v", nf.Sub(now))
	}
}

func TestNextNewLandsOnNewMoon(t *testing.T) {
	now := time.Date(2027, 2, 14, 8, 0, 0, 0, time.UTC)
	p := Phase(NextNew(now))
	dist := math.Min(p, 1-p)
	if dist > 0.01 {
		t.Errorf("phase at NextNew = %f, want ≈0", p)
	}
}

func TestAtIsConsistent(t *testing.T) {
	now := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	st := At(now)
	if st.Phase != Phase(now) {
		t.Error("State.Phase disagrees with Phase")
	}
	if math.Abs(st.Illumination-IlluminationPercent(now)) > 1e-9 {
		t.Error("State.Illumination disagrees with IlluminationPercent")
	}
	if st.Name != Name(now) {
		t.Error("State.Name disagrees with Name")
	}
}
