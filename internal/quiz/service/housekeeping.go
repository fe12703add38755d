package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/quizden/quizden/internal/quiz/store"
)

// HousekeepingService periodically cleans up expired database records to
// prevent unbounded growth of the oauth_states table.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes expired single-use federation states.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	if err := s.Store.OAuthStates().DeleteExpiredStates(ctx); err != nil {
		s.Logger.Error("failed to delete expired oauth states", "error", err)
		return
	}
	s.Logger.Debug("deleted expired oauth states")
}
