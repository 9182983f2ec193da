package store

import (
	"errors"
	"testing"
	"time"

	"github.com/pocketcosmos/planetweather/internal/weather"
)

func snap(bodyID string, ts time.Time) weather.Snapshot {
	return weather.Snapshot{BodyID: bodyID, Timestamp: ts, Source: weather.SourceLive}
}

func TestGetLatestEmptyStore(t *testing.T) {
	s := NewMemoryStore(10, 0)
	if _, err := s.GetLatest("earth"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndGetLatest(t *testing.T) {
	s := NewMemoryStore(10, 0)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s.SaveSnapshot("earth", snap("earth", base))
	s.SaveSnapshot("earth", snap("earth", base.Add(time.Hour)))
	s.SaveSnapshot("mars", snap("mars", base))

	latest, err := s.GetLatest("earth")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if !latest.Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("latest timestamp = %v, want %v", latest.Timestamp, base.Add(time.Hour))
	}
}

func TestRetentionByCount(t *testing.T) {
	s := NewMemoryStore(3, 0)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		s.SaveSnapshot("earth", snap("earth", base.Add(time.Duration(i)*time.Hour)))
	}

	all, err := s.GetRange("earth", base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("GetRange: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("retained %d snapshots, want 3", len(all))
	}
	if !all[0].Timestamp.Equal(base.Add(7 * time.Hour)) {
		t.Errorf("oldest retained = %v, want %v", all[0].Timestamp, base.Add(7*time.Hour))
	}
}

func TestGetRangeBounds(t *testing.T) {
	s := NewMemoryStore(0, 0)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.SaveSnapshot("earth", snap("earth", base.Add(time.Duration(i)*time.Hour)))
	}

	got, err := s.GetRange("earth", base.Add(time.Hour), base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("GetRange: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d snapshots in range, want 3 (bounds inclusive)", len(got))
	}

	if _, err := s.GetRange("earth", base.Add(48*time.Hour), base.Add(72*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty range should be ErrNotFound, got %v", err)
	}
}
