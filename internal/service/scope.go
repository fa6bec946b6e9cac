package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/hotelboard/internal/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportScope is built once per request and handed to every aggregator, so
// all of them see the same hotel set and the same "now".
type ReportScope struct {
	OwnerID  primitive.ObjectID
	HotelIDs []primitive.ObjectID
	Range    *DateRange
	Now      time.Time
	Location *time.Location
}

// Empty reports whether the owner has no hotels.
func (s ReportScope) Empty() bool { return len(s.HotelIDs) == 0 }

// DayStart is today's midnight in the report zone.
func (s ReportScope) DayStart() time.Time {
	t := s.Now.In(s.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.Location)
}

// MonthStart is midnight of the first day of the current month in the report zone.
func (s ReportScope) MonthStart() time.Time {
	t := s.Now.In(s.Location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, s.Location)
}

// ParseOwnerID turns the authenticated owner id into an ObjectID. An id that
// does not parse has no identity in the store.
func ParseOwnerID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound("owner not found")
	}
	return id, nil
}

// resolveScope maps the owner to its hotel-id set. No hotels is not an error.
func (s *reportService) resolveScope(ctx context.Context, rawOwner string, rng *DateRange) (ReportScope, error) {
	owner, err := ParseOwnerID(rawOwner)
	if err != nil {
		return ReportScope{}, err
	}
	ids, err := s.src.FindHotelIDsByOwner(ctx, owner)
	if err != nil {
		return ReportScope{}, apperr.Store(err, "resolve owner hotels")
	}
	return ReportScope{
		OwnerID:  owner,
		HotelIDs: ids,
		Range:    rng,
		Now:      s.clock.Now(),
		Location: s.loc,
	}, nil
}
