package service

import (
	"context"
	"time"

	"github.com/guttosm/hotelboard/internal/clock"
	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/metrics"
	"github.com/guttosm/hotelboard/internal/storage"
	"golang.org/x/sync/errgroup"
)

// ReportService computes the owner-scoped reports of the business back-office.
type ReportService interface {
	Dashboard(ctx context.Context, ownerID string) (*models.Report, error)
	RevenueSeries(ctx context.Context, ownerID string, q ReportQuery) ([]models.ChartPoint, error)
	Statistics(ctx context.Context, ownerID string, q ReportQuery) (*models.Statistics, error)
	RevenueChart(ctx context.Context, ownerID string, q ReportQuery) (*models.ChartData, error)
}

// Options configures a ReportService. Zero values fall back to the
// trailing-30-day policy, UTC, five recent items and the wall clock.
type Options struct {
	Policy      OccupancyPolicy
	Location    *time.Location
	RecentLimit int
	Clock       clock.Clock
	Metrics     *metrics.ReportMetrics
}

type reportService struct {
	src         storage.ReportSource
	policy      OccupancyPolicy
	loc         *time.Location
	recentLimit int
	clock       clock.Clock
	metrics     *metrics.ReportMetrics
}

// NewReportService builds the reporting engine over src.
func NewReportService(src storage.ReportSource, opts Options) ReportService {
	return newReportService(src, opts)
}

func newReportService(src storage.ReportSource, opts Options) *reportService {
	s := &reportService{
		src:         src,
		policy:      opts.Policy,
		loc:         opts.Location,
		recentLimit: opts.RecentLimit,
		clock:       opts.Clock,
		metrics:     opts.Metrics,
	}
	if s.policy == "" {
		s.policy = OccupancyTrailing30d
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.recentLimit <= 0 {
		s.recentLimit = 5
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	return s
}

// Dashboard builds the flat dashboard report. Aggregators run concurrently;
// the first failure cancels the others and fails the report.
func (s *reportService) Dashboard(ctx context.Context, ownerID string) (report *models.Report, err error) {
	defer func() { s.metrics.IncReport("dashboard", err) }()

	sc, err := s.resolveScope(ctx, ownerID, nil)
	if err != nil {
		return nil, err
	}
	var p reportParts
	if sc.Empty() {
		return p.assemble(s.loc), nil
	}

	monthStart := sc.MonthStart()
	chartStart := monthStart.AddDate(0, -(dashboardChartPoints - 1), 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.all, err = s.totals(gctx, sc, "totals_all", nil, nil)
		return err
	})
	g.Go(func() (err error) {
		p.month, err = s.totals(gctx, sc, "totals_month", &monthStart, nil)
		return err
	})
	g.Go(func() (err error) {
		p.rating, err = s.rating(gctx, sc)
		return err
	})
	g.Go(func() (err error) {
		p.occ, err = s.occupancy(gctx, sc)
		return err
	})
	g.Go(func() (err error) {
		p.chart, err = s.series(gctx, sc, models.GranularityMonth, &chartStart, nil)
		return err
	})
	g.Go(func() (err error) {
		p.bookings, err = s.recentBookings(gctx, sc)
		return err
	})
	g.Go(func() (err error) {
		p.reviews, err = s.recentReviews(gctx, sc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p.assemble(s.loc), nil
}

// chartWindow resolves the [from, to) bounds of a chart: the explicit range
// when given, otherwise the granularity's lookback up to now.
func chartWindow(sc ReportScope, g models.Granularity) (from, to *time.Time) {
	if sc.Range != nil {
		return &sc.Range.From, &sc.Range.To
	}
	start := lookback(sc.Now, g)
	return &start, nil
}

// RevenueSeries returns the (label, revenue, bookings) series of the
// dashboard revenue chart, bucketed by q.Period.
func (s *reportService) RevenueSeries(ctx context.Context, ownerID string, q ReportQuery) (points []models.ChartPoint, err error) {
	defer func() { s.metrics.IncReport("revenue_series", err) }()

	g, err := ParsePeriod(q.Period)
	if err != nil {
		return nil, err
	}
	rng, err := ParseRange(q.From, q.To, s.loc)
	if err != nil {
		return nil, err
	}
	sc, err := s.resolveScope(ctx, ownerID, rng)
	if err != nil {
		return nil, err
	}
	from, to := chartWindow(sc, g)
	return s.series(ctx, sc, g, from, to)
}

// RevenueChart returns the statistics chart as parallel arrays, bucketed by
// q.GroupBy.
func (s *reportService) RevenueChart(ctx context.Context, ownerID string, q ReportQuery) (data *models.ChartData, err error) {
	defer func() { s.metrics.IncReport("revenue_chart", err) }()

	g, err := ParseGroupBy(q.GroupBy)
	if err != nil {
		return nil, err
	}
	rng, err := ParseRange(q.From, q.To, s.loc)
	if err != nil {
		return nil, err
	}
	sc, err := s.resolveScope(ctx, ownerID, rng)
	if err != nil {
		return nil, err
	}
	from, to := chartWindow(sc, g)
	points, err := s.series(ctx, sc, g, from, to)
	if err != nil {
		return nil, err
	}
	out := toChartData(points)
	return &out, nil
}

// Statistics returns revenue and booking totals for the total (or explicit
// from/to), month-to-date and day-to-date windows, plus occupancy.
func (s *reportService) Statistics(ctx context.Context, ownerID string, q ReportQuery) (stats *models.Statistics, err error) {
	defer func() { s.metrics.IncReport("statistics", err) }()

	rng, err := ParseRange(q.From, q.To, s.loc)
	if err != nil {
		return nil, err
	}
	sc, err := s.resolveScope(ctx, ownerID, rng)
	if err != nil {
		return nil, err
	}
	var total, month, day models.Totals
	var occ models.Occupancy
	if sc.Empty() {
		return assembleStatistics(total, month, day, occ), nil
	}

	var totalFrom, totalTo *time.Time
	if rng != nil {
		totalFrom, totalTo = &rng.From, &rng.To
	}
	monthStart, dayStart := sc.MonthStart(), sc.DayStart()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.totals(gctx, sc, "totals_range", totalFrom, totalTo)
		return err
	})
	g.Go(func() (err error) {
		month, err = s.totals(gctx, sc, "totals_month", &monthStart, nil)
		return err
	})
	g.Go(func() (err error) {
		day, err = s.totals(gctx, sc, "totals_day", &dayStart, nil)
		return err
	})
	g.Go(func() (err error) {
		occ, err = s.occupancy(gctx, sc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assembleStatistics(total, month, day, occ), nil
}
