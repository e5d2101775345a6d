package worker

import (
	"context"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"

	"github.com/sirupsen/logrus"
)

// Refresher is the part of service.OverviewService the warmer needs.
type Refresher interface {
	Refresh(ctx context.Context) (*entity.Overview, error)
}

type OverviewWarmer struct {
	overview Refresher
	interval time.Duration
}

func NewOverviewWarmer(overview Refresher, interval time.Duration) *OverviewWarmer {
	return &OverviewWarmer{
		overview: overview,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled. The first snapshot is built right away
// so the dashboard does not wait for the first tick.
func (w *OverviewWarmer) Start(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.WithField("interval", w.interval).Info("Overview warmer started")

	w.warm(ctx)
	for {
		select {
		case <-ctx.Done():
			logrus.Info("Overview warmer stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

// warm пересчитывает сводку и кладёт её в кэш
func (w *OverviewWarmer) warm(ctx context.Context) {
	started := time.Now()

	overview, err := w.overview.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logrus.WithError(err).Error("Failed to refresh overview")
		return
	}

	logrus.WithFields(logrus.Fields{
		"total_cars":     overview.TotalCars,
		"total_bookings": overview.TotalBookings,
		"took":           time.Since(started),
	}).Debug("Overview refreshed")
}
