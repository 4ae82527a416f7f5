package workers

import (
	"context"
	"time"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/repositories"
)

// RatingWorker keeps the denormalized rating_avg / rating_count columns on
// provider profiles in sync with the reviews table. Reviews are immutable,
// so an hourly sweep is enough; listings tolerate slightly stale averages.
type RatingWorker struct {
	ajussiRepo repositories.AjussiProfileRepository
	interval   time.Duration
}

func NewRatingWorker(ajussiRepo repositories.AjussiProfileRepository) *RatingWorker {
	return &RatingWorker{
		ajussiRepo: ajussiRepo,
		interval:   1 * time.Hour,
	}
}

// Start launches the background refresh loop.
func (w *RatingWorker) Start(ctx context.Context) {
	go w.refreshLoop(ctx)
}

func (w *RatingWorker) refreshLoop(ctx context.Context) {
	// Run once on startup so aggregates are correct after a restart.
	w.refreshOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Rating worker stopped")
			return
		case <-ticker.C:
			w.refreshOnce(ctx)
		}
	}
}

func (w *RatingWorker) refreshOnce(ctx context.Context) {
	updated, err := w.ajussiRepo.RefreshRatingAggregates(ctx)
	if err != nil {
		logger.Error("Rating aggregate refresh failed", "error", err)
		return
	}
	if updated > 0 {
		logger.Info("Rating aggregates refreshed", "profiles", updated)
	}
}
