package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/pocketcosmos/planetweather/internal/weather"
)

// Scheduler periodically refreshes live weather data for the bodies a
// provider covers, keeping the cache warm so API requests rarely block on
// an upstream fetch.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	interval  time.Duration
}

// New creates a Scheduler refreshing through service every interval.
func New(service *weather.Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. An immediate first run warms the cache at boot.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(func() {
		log.Println("scheduler: refreshing live weather data")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.service.RefreshLive(ctx)

		log.Println("scheduler: refresh complete")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
