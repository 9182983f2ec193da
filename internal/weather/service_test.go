package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pocketcosmos/planetweather/internal/catalog"
)

// fakeProvider serves canned readings, or fails on demand.
type fakeProvider struct {
	name    string
	body    string
	reading ProviderReading
	err     error
	calls   int
}

func (f *fakeProvider) Name() string              { return f.name }
func (f *fakeProvider) Covers(bodyID string) bool { return bodyID == f.body }
func (f *fakeProvider) Fetch(ctx context.Context, bodyID string) (ProviderReading, error) {
	f.calls++
	if f.err != nil {
		return ProviderReading{}, f.err
	}
	return f.reading, nil
}

// fakeStore is a minimal Store for service tests.
type fakeStore struct {
	saved  map[string][]Snapshot
	latest map[string]Snapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string][]Snapshot{}, latest: map[string]Snapshot{}}
}

func (s *fakeStore) SaveSnapshot(bodyID string, snap Snapshot) {
	s.saved[bodyID] = append(s.saved[bodyID], snap)
	s.latest[bodyID] = snap
}

func (s *fakeStore) GetLatest(bodyID string) (Snapshot, error) {
	snap, ok := s.latest[bodyID]
	if !ok {
		return Snapshot{}, errors.New("not found")
	}
	return snap, nil
}

func (s *fakeStore) GetRange(bodyID string, from, to time.Time) ([]Snapshot, error) {
	return s.saved[bodyID], nil
}

func newTestService(providers ...Provider) (*Service, *fakeStore) {
	st := newFakeStore()
	sim := NewSimulator(catalog.Default(), fixedRand{0.5})
	return NewService(sim, st, providers, 30*time.Minute), st
}

func TestCurrentUnknownBody(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Current(context.Background(), "planet-x"); !errors.Is(err, catalog.ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
}

func TestCurrentUncoveredBodyIsSimulated(t *testing.T) {
	svc, _ := newTestService()
	snap, err := svc.Current(context.Background(), "jupiter")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if snap.Source != SourceSimulated {
		t.Errorf("source = %s, want simulated", snap.Source)
	}
}

func TestCurrentUsesLiveProvider(t *testing.T) {
	p := &fakeProvider{
		name: "fake-earth",
		body: "earth",
		reading: ProviderReading{
			ProviderName: "fake-earth",
			BodyID:       "earth",
			Timestamp:    time.Now(),
			TemperatureC: 21.5,
			HighC:        25,
			LowC:         12,
			Condition:    catalog.ConditionClear,
		},
	}
	svc, st := newTestService(p)

	snap, err := svc.Current(context.Background(), "earth")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if snap.Source != SourceLive {
		t.Errorf("source = %s, want live", snap.Source)
	}
	if snap.TemperatureC != 21.5 {
		t.Errorf("temperature = %f, want the provider's 21.5", snap.TemperatureC)
	}
	if len(st.saved["earth"]) != 1 {
		t.Errorf("live snapshot not cached (saved %d)", len(st.saved["earth"]))
	}
}

// Provider failure must degrade to simulation, never to an error.
func TestCurrentFallsBackOnProviderError(t *testing.T) {
	p := &fakeProvider{name: "down", body: "earth", err: errors.New("upstream down")}
	svc, _ := newTestService(p)

	snap, err := svc.Current(context.Background(), "earth")
	if err != nil {
		t.Fatalf("Current should not fail on provider error, got %v", err)
	}
	if snap.Source != SourceSimulated {
		t.Errorf("source = %s, want simulated fallback", snap.Source)
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1", p.calls)
	}
}

func TestCurrentServesFreshCache(t *testing.T) {
	p := &fakeProvider{
		name: "fake-earth",
		body: "earth",
		reading: ProviderReading{
			BodyID: "earth", Timestamp: time.Now(), TemperatureC: 19,
			HighC: 22, LowC: 11, Condition: catalog.ConditionClear,
		},
	}
	svc, _ := newTestService(p)

	ctx := context.Background()
	if _, err := svc.Current(ctx, "earth"); err != nil {
		t.Fatalf("first Current: %v", err)
	}
	if _, err := svc.Current(ctx, "earth"); err != nil {
		t.Fatalf("second Current: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second serves cache)", p.calls)
	}
}

// Explicit instants bypass the live path entirely.
func TestAtAlwaysSimulates(t *testing.T) {
	p := &fakeProvider{name: "fake-earth", body: "earth",
		reading: ProviderReading{BodyID: "earth", TemperatureC: 30}}
	svc, _ := newTestService(p)

	snap, err := svc.At("earth", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if snap.Source != SourceSimulated {
		t.Errorf("source = %s, want simulated", snap.Source)
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times for explicit instant, want 0", p.calls)
	}
}

func TestRefreshLive(t *testing.T) {
	p := &fakeProvider{
		name: "fake-mars",
		body: "mars",
		reading: ProviderReading{
			BodyID: "mars", Timestamp: time.Now(), TemperatureC: -60,
			HighC: -20, LowC: -80, Condition: catalog.ConditionDust,
		},
	}
	svc, st := newTestService(p)

	svc.RefreshLive(context.Background())
	if len(st.saved["mars"]) != 1 {
		t.Fatalf("refresh cached %d snapshots, want 1", len(st.saved["mars"]))
	}
	if st.saved["mars"][0].Source != SourceLive {
		t.Error("refreshed snapshot should be marked live")
	}
}

func TestForecastUnknownBody(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Hourly("planet-x", time.Now()); !errors.Is(err, catalog.ErrUnknownBody) {
		t.Errorf("Hourly: expected ErrUnknownBody, got %v", err)
	}
	if _, err := svc.Daily("planet-x", time.Now()); !errors.Is(err, catalog.ErrUnknownBody) {
		t.Errorf("Daily: expected ErrUnknownBody, got %v", err)
	}
}
