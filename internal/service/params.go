package service

import (
	"strings"
	"time"

	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/domain/models"
)

// DateRange is the half-open window [From, To) of an explicit from/to filter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ReportQuery carries the raw query parameters of the reporting endpoints.
// Values are normalized by the service, never by the handlers.
type ReportQuery struct {
	Period  string
	GroupBy string
	From    string
	To      string
}

// ParsePeriod normalizes the period parameter of the dashboard revenue chart.
func ParsePeriod(raw string) (models.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "month":
		return models.GranularityMonth, nil
	case "week":
		return models.GranularityWeek, nil
	case "year":
		return models.GranularityYear, nil
	default:
		return "", apperr.Validationf("invalid period %q, expected month, week or year", raw)
	}
}

// ParseGroupBy normalizes the groupBy parameter of the statistics chart.
func ParseGroupBy(raw string) (models.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "month":
		return models.GranularityMonth, nil
	case "day":
		return models.GranularityDay, nil
	case "year":
		return models.GranularityYear, nil
	default:
		return "", apperr.Validationf("invalid groupBy %q, expected day, month or year", raw)
	}
}

// ParseRange parses an optional from/to pair. Both empty yields nil.
//
// Values are YYYY-MM-DD (midnight in loc) or RFC3339. A date-only "to"
// covers that whole day.
func ParseRange(from, to string, loc *time.Location) (*DateRange, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, apperr.Validation("from and to must be provided together")
	}

	start, _, err := parseBound(from, loc)
	if err != nil {
		return nil, apperr.Validationf("invalid from %q, expected YYYY-MM-DD or RFC3339", from)
	}
	end, dateOnly, err := parseBound(to, loc)
	if err != nil {
		return nil, apperr.Validationf("invalid to %q, expected YYYY-MM-DD or RFC3339", to)
	}
	if dateOnly {
		end = end.AddDate(0, 0, 1)
	}
	if end.Before(start) {
		return nil, apperr.Validationf("to %q precedes from %q", to, from)
	}
	return &DateRange{From: start, To: end}, nil
}

func parseBound(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err = time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}

// lookback returns the default window start of a chart granularity when no
// explicit range is given.
func lookback(now time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityDay:
		return now.AddDate(0, 0, -30)
	case models.GranularityWeek:
		return now.AddDate(0, 0, -12*7)
	case models.GranularityYear:
		return now.AddDate(-5, 0, 0)
	default:
		return now.AddDate(0, -12, 0)
	}
}
