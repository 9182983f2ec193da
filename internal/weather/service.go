package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/metrics"
)

// Service orchestrates live providers, the snapshot cache, and the
// simulation fallback. Resolution order for current weather: fresh cached
// snapshot, then the body's live provider, then the simulator. The
// simulator is total, so Current never fails for a known body.
type Service struct {
	sim       *Simulator
	store     Store
	providers []Provider

	// cacheTTL bounds how stale a cached live snapshot may be before a
	// refetch. Simulated snapshots are never served from cache: they are
	// cheap to recompute and the display noise is the point.
	cacheTTL time.Duration
}

// NewService creates a Service. providers may be empty, in which case every
// body is simulated.
func NewService(sim *Simulator, store Store, providers []Provider, cacheTTL time.Duration) *Service {
	return &Service{
		sim:       sim,
		store:     store,
		providers: providers,
		cacheTTL:  cacheTTL,
	}
}

// Simulator exposes the underlying simulator for forecast endpoints.
func (s *Service) Simulator() *Simulator { return s.sim }

// providerFor returns the first provider covering bodyID, if any.
func (s *Service) providerFor(bodyID string) (Provider, bool) {
	for _, p := range s.providers {
		if p.Covers(bodyID) {
			return p, true
		}
	}
	return nil, false
}

// Current returns the weather for bodyID at the present moment, preferring
// live data where a provider covers the body and falling back to the
// simulation on any failure.
func (s *Service) Current(ctx context.Context, bodyID string) (Snapshot, error) {
	body, ok := s.sim.Catalog().Lookup(bodyID)
	if !ok {
		return Snapshot{}, fmt.Errorf("current weather for %q: %w", bodyID, catalog.ErrUnknownBody)
	}

	now := time.Now().UTC()

	p, covered := s.providerFor(bodyID)
	if !covered {
		metrics.SimulationCalls.WithLabelValues(bodyID).Inc()
		return s.sim.Simulate(body, now), nil
	}

	// A recent cached live snapshot is as good as a refetch.
	if cached, err := s.store.GetLatest(bodyID); err == nil &&
		cached.Source == SourceLive && now.Sub(cached.Timestamp) < s.cacheTTL {
		return cached, nil
	}

	reading, err := p.Fetch(ctx, bodyID)
	if err != nil {
		log.Printf("provider %s fetch failed for %s, falling back to simulation: %v", p.Name(), bodyID, err)
		metrics.ProviderFetches.WithLabelValues(p.Name(), "error").Inc()
		metrics.SimulationCalls.WithLabelValues(bodyID).Inc()
		return s.sim.Simulate(body, now), nil
	}
	metrics.ProviderFetches.WithLabelValues(p.Name(), "ok").Inc()

	snap := MergeReading(body, reading)
	s.store.SaveSnapshot(bodyID, snap)
	return snap, nil
}

// At returns the weather for bodyID at an explicit instant. Past or future
// instants are always simulated; live feeds only describe "now".
func (s *Service) At(bodyID string, t time.Time) (Snapshot, error) {
	snap, err := s.sim.SimulateID(bodyID, t)
	if err != nil {
		return Snapshot{}, err
	}
	metrics.SimulationCalls.WithLabelValues(bodyID).Inc()
	return snap, nil
}

// Hourly returns the 24-point planetary-hour forecast for bodyID from start.
func (s *Service) Hourly(bodyID string, start time.Time) (Forecast, error) {
	body, ok := s.sim.Catalog().Lookup(bodyID)
	if !ok {
		return nil, fmt.Errorf("hourly forecast for %q: %w", bodyID, catalog.ErrUnknownBody)
	}
	return s.sim.HourlyForecast(body, start), nil
}

// Daily returns the 10-day forecast for bodyID from start.
func (s *Service) Daily(bodyID string, start time.Time) (Forecast, error) {
	body, ok := s.sim.Catalog().Lookup(bodyID)
	if !ok {
		return nil, fmt.Errorf("daily forecast for %q: %w", bodyID, catalog.ErrUnknownBody)
	}
	return s.sim.DailyForecast(body, start), nil
}

// RefreshLive fetches and caches live data for every covered body. Called
// by the scheduler; failures are logged and skipped so one provider outage
// does not stall the rest.
func (s *Service) RefreshLive(ctx context.Context) {
	for _, p := range s.providers {
		for _, body := range s.sim.Catalog().Bodies() {
			if !p.Covers(body.ID) {
				continue
			}

			reading, err := p.Fetch(ctx, body.ID)
			if err != nil {
				log.Printf("refresh: provider %s failed for %s: %v", p.Name(), body.ID, err)
				metrics.ProviderFetches.WithLabelValues(p.Name(), "error").Inc()
				continue
			}
			metrics.ProviderFetches.WithLabelValues(p.Name(), "ok").Inc()
			s.store.SaveSnapshot(body.ID, MergeReading(body, reading))
		}
	}
}

// History returns cached snapshots for bodyID between from and to.
func (s *Service) History(bodyID string, from, to time.Time) ([]Snapshot, error) {
	return s.store.GetRange(bodyID, from, to)
}
