package store

import (
	"errors"
	"sync"
	"time"

	"github.com/pocketcosmos/planetweather/internal/weather"
)

var (
	// ErrNotFound is returned when no snapshot is cached for a body.
	ErrNotFound = errors.New("no weather data for body")
)

// snapshotHistory holds a time-ordered list of snapshots for one body.
type snapshotHistory struct {
	snapshots []weather.Snapshot
}

// MemoryStore is a concurrency-safe in-memory snapshot cache keyed by body
// id. It backs the live-data path; simulated snapshots are recomputed on
// demand and never stored.
type MemoryStore struct {
	mu sync.RWMutex

	data map[string]*snapshotHistory

	maxHistory int           // max snapshots per body, <= 0 = unlimited
	maxAge     time.Duration // max snapshot age, 0 = unlimited
}

// NewMemoryStore creates a MemoryStore with optional retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*snapshotHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveSnapshot appends a snapshot for a body and enforces retention.
func (s *MemoryStore) SaveSnapshot(bodyID string, snapshot weather.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[bodyID]
	if !ok {
		history = &snapshotHistory{}
		s.data[bodyID] = history
	}

	history.snapshots = append(history.snapshots, snapshot)

	if s.maxHistory > 0 && len(history.snapshots) > s.maxHistory {
		over := len(history.snapshots) - s.maxHistory
		history.snapshots = history.snapshots[over:]
	}

	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.snapshots); i++ {
			if !history.snapshots[i].Timestamp.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.snapshots) {
			history.snapshots = history.snapshots[i:]
		}
	}
}

// GetLatest returns the most recent snapshot for a body.
func (s *MemoryStore) GetLatest(bodyID string) (weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[bodyID]
	if !ok || len(history.snapshots) == 0 {
		return weather.Snapshot{}, ErrNotFound
	}
	return history.snapshots[len(history.snapshots)-1], nil
}

// GetRange returns all snapshots for a body between from and to, inclusive.
func (s *MemoryStore) GetRange(bodyID string, from, to time.Time) ([]weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[bodyID]
	if !ok || len(history.snapshots) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Snapshot
	for _, snap := range history.snapshots {
		if !snap.Timestamp.Before(from) && !snap.Timestamp.After(to) {
			result = append(result, snap)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
