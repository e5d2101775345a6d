package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ds124wfegd/car-rental/internal/analytics"
	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type overviewService struct {
	carRepo     database.CarRepository
	bookingRepo database.BookingRepository
	cache       database.OverviewCache
	now         func() time.Time

	// bumped by Invalidate; a refresh that straddles a write must not cache
	generation atomic.Uint64
}

// NewOverviewService takes a nil cache to compute every snapshot on demand.
func NewOverviewService(
	carRepo database.CarRepository,
	bookingRepo database.BookingRepository,
	cache database.OverviewCache,
) OverviewService {
	return &overviewService{
		carRepo:     carRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		now:         time.Now,
	}
}

func (s *overviewService) GetOverview(ctx context.Context) (*entity.Overview, error) {
	if s.cache != nil {
		overview, err := s.cache.Get(ctx)
		if err == nil {
			return overview, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			logrus.WithError(err).Warn("Overview cache read failed, computing")
		}
	}
	return s.Refresh(ctx)
}

// Refresh loads cars and bookings concurrently and computes a new snapshot.
// Any load failure fails the whole snapshot.
func (s *overviewService) Refresh(ctx context.Context) (*entity.Overview, error) {
	gen := s.generation.Load()

	var (
		cars     []entity.Car
		bookings []entity.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cars, err = s.carRepo.List(gctx, entity.CarFilter{})
		if err != nil {
			return fmt.Errorf("failed to load cars: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.List(gctx, entity.BookingFilter{})
		if err != nil {
			return fmt.Errorf("failed to load bookings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := analytics.Compute(s.now(), bookings, cars)

	if s.cache != nil {
		if err := s.cache.Set(ctx, overview); err != nil {
			logrus.WithError(err).Warn("Failed to cache overview")
		} else if s.generation.Load() != gen {
			// данные изменились во время расчёта
			s.dropCached(ctx)
		}
	}
	return overview, nil
}

func (s *overviewService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.generation.Add(1)
	s.dropCached(ctx)
}

func (s *overviewService) dropCached(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate overview cache")
	}
}
