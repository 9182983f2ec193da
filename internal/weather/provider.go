package weather

import (
	"context"
	"time"
)

// Provider abstracts a live weather data source for one or more bodies
// (e.g. an Earth forecast API, a Mars mission data feed). The simulation is
// the drop-in fallback when a provider fails or no provider covers a body.
type Provider interface {
	Name() string
	// Covers reports whether this provider serves the given body.
	Covers(bodyID string) bool
	Fetch(ctx context.Context, bodyID string) (ProviderReading, error)
}

// Store is the contract the snapshot cache must satisfy. Caching is an
// external concern layered over the pure simulation; the models themselves
// never memoize.
type Store interface {
	SaveSnapshot(bodyID string, snapshot Snapshot)
	GetLatest(bodyID string) (Snapshot, error)
	GetRange(bodyID string, from, to time.Time) ([]Snapshot, error)
}
