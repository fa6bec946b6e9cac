package service

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/guttosm/hotelboard/internal/storage"
)

// pointInTimeStatuses are the booking statuses counted by OccupancyPointInTime.
var pointInTimeStatuses = []string{models.BookingConfirmed, models.BookingPending}

// observe times one aggregator, records it and wraps a store failure with
// the aggregator name. An aggregator stopped because a sibling already failed
// is not a failure of its own: it is neither counted nor wrapped.
func (s *reportService) observe(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	log := logger.Ctx(ctx)
	if errors.Is(err, context.Canceled) {
		log.Debug().Str("aggregator", name).Dur("elapsed", elapsed).Msg("aggregator canceled")
		return err
	}
	s.metrics.ObserveAggregator(name, elapsed, err)
	if err != nil {
		log.Error().Err(err).Str("aggregator", name).Dur("elapsed", elapsed).Msg("aggregator failed")
		return apperr.Store(err, name)
	}
	log.Debug().Str("aggregator", name).Dur("elapsed", elapsed).Msg("aggregator done")
	return nil
}

// totals sums revenue and counts non-cancelled bookings created in [from, to).
func (s *reportService) totals(ctx context.Context, sc ReportScope, name string, from, to *time.Time) (models.Totals, error) {
	var out models.Totals
	if sc.Empty() {
		return out, nil
	}
	err := s.observe(ctx, name, func() error {
		buckets, err := s.src.AggregateBookings(ctx, storage.BookingQuery{
			HotelIDs:      sc.HotelIDs,
			ExcludeStatus: models.BookingCancelled,
			CreatedFrom:   from,
			CreatedTo:     to,
			Location:      sc.Location,
		})
		for _, b := range buckets {
			out.Revenue += b.Revenue
			out.Bookings += b.Count
		}
		return err
	})
	return out, err
}

// rating returns the lifetime review average rounded to one decimal.
func (s *reportService) rating(ctx context.Context, sc ReportScope) (models.RatingSummary, error) {
	var out models.RatingSummary
	if sc.Empty() {
		return out, nil
	}
	err := s.observe(ctx, "rating", func() error {
		agg, err := s.src.AggregateReviews(ctx, sc.HotelIDs)
		if err != nil {
			return err
		}
		out.Count = agg.Count
		if agg.Count > 0 {
			out.Average = roundRating(agg.Average)
		}
		return nil
	})
	return out, err
}

// occupancy counts active rooms and booked rooms under the configured policy.
func (s *reportService) occupancy(ctx context.Context, sc ReportScope) (models.Occupancy, error) {
	var out models.Occupancy
	if sc.Empty() {
		return out, nil
	}
	err := s.observe(ctx, "occupancy", func() error {
		rooms, err := s.src.CountActiveRooms(ctx, sc.HotelIDs)
		if err != nil {
			return err
		}
		var booked int64
		switch s.policy {
		case OccupancyPointInTime:
			booked, err = s.src.CountBookingsSpanning(ctx, sc.HotelIDs, sc.DayStart(), pointInTimeStatuses)
		default:
			booked, err = s.src.CountDistinctRoomsCheckedInSince(ctx, sc.HotelIDs, sc.Now.AddDate(0, 0, -30))
		}
		if err != nil {
			return err
		}
		out = models.Occupancy{Rate: percentRate(booked, rooms), TotalRooms: rooms, BookedRooms: booked}
		return nil
	})
	return out, err
}

// series buckets non-cancelled bookings created in [from, to) by g,
// ascending by key and sparse.
func (s *reportService) series(ctx context.Context, sc ReportScope, g models.Granularity, from, to *time.Time) ([]models.ChartPoint, error) {
	out := []models.ChartPoint{}
	if sc.Empty() {
		return out, nil
	}
	err := s.observe(ctx, "chart_"+string(g), func() error {
		buckets, err := s.src.AggregateBookings(ctx, storage.BookingQuery{
			HotelIDs:      sc.HotelIDs,
			ExcludeStatus: models.BookingCancelled,
			CreatedFrom:   from,
			CreatedTo:     to,
			GroupBy:       g,
			Location:      sc.Location,
		})
		for _, b := range buckets {
			out = append(out, models.ChartPoint{Label: b.Key, Revenue: b.Revenue, Bookings: b.Count})
		}
		return err
	})
	return out, err
}

func (s *reportService) recentBookings(ctx context.Context, sc ReportScope) ([]models.RecentBooking, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []models.RecentBooking
	err := s.observe(ctx, "recent_bookings", func() error {
		var err error
		out, err = s.src.FindRecentBookings(ctx, sc.HotelIDs, s.recentLimit)
		return err
	})
	return out, err
}

func (s *reportService) recentReviews(ctx context.Context, sc ReportScope) ([]models.RecentReview, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []models.RecentReview
	err := s.observe(ctx, "recent_reviews", func() error {
		var err error
		out, err = s.src.FindRecentReviews(ctx, sc.HotelIDs, s.recentLimit)
		return err
	})
	return out, err
}
