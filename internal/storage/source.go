package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names shared by the live source and the seeder.
const (
	HotelsCollection      = "hotels"
	RoomsCollection       = "rooms"
	BookingsCollection    = "bookings"
	ReviewsCollection     = "reviews"
	SettlementsCollection = "settlements"
	SeedLogCollection     = "seed_log"
)

// BookingQuery filters and groups bookings for AggregateBookings.
//
// CreatedFrom is inclusive and CreatedTo exclusive; nil means unbounded.
// Location is the zone bucket keys are computed in (UTC when nil).
type BookingQuery struct {
	HotelIDs      []primitive.ObjectID
	ExcludeStatus string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	GroupBy       models.Granularity
	Location      *time.Location
}

// SettlementQuery filters an owner's settlements. Empty Month/Status match all.
type SettlementQuery struct {
	BusinessUser primitive.ObjectID
	Month        string
	Status       string
}

// ReportSource is the read-only query contract of the reporting engine.
//
// Every method taking hotel ids returns its zero value without touching the
// store when the id set is empty. Lookups by id return (nil, nil) when the
// document does not exist.
type ReportSource interface {
	FindHotelIDsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)
	AggregateBookings(ctx context.Context, q BookingQuery) ([]models.BookingBucket, error)
	AggregateReviews(ctx context.Context, hotelIDs []primitive.ObjectID) (models.ReviewAggregate, error)
	CountActiveRooms(ctx context.Context, hotelIDs []primitive.ObjectID) (int64, error)
	CountDistinctRoomsCheckedInSince(ctx context.Context, hotelIDs []primitive.ObjectID, since time.Time) (int64, error)
	CountBookingsSpanning(ctx context.Context, hotelIDs []primitive.ObjectID, day time.Time, statuses []string) (int64, error)
	FindRecentBookings(ctx context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentBooking, error)
	FindRecentReviews(ctx context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentReview, error)

	FindHotelsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Hotel, error)
	FindHotelByID(ctx context.Context, id primitive.ObjectID) (*models.Hotel, error)
	FindRoomsByHotel(ctx context.Context, hotelID primitive.ObjectID) ([]models.Room, error)
	FindRoomByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	FindReviews(ctx context.Context, hotelIDs []primitive.ObjectID) ([]models.ReviewWithHotel, error)
	FindReviewByID(ctx context.Context, id primitive.ObjectID) (*models.ReviewWithHotel, error)
	FindSettlements(ctx context.Context, q SettlementQuery) ([]models.Settlement, error)

	Ping(ctx context.Context) error
}

// bucketFormats are the $dateToString formats of each granularity.
var bucketFormats = map[models.Granularity]string{
	models.GranularityDay:   "%Y-%m-%d",
	models.GranularityWeek:  "%G-W%V",
	models.GranularityMonth: "%Y-%m",
	models.GranularityYear:  "%Y",
}

// BucketKey renders t as the bucket label of granularity g in loc. It matches
// the keys produced by the Mongo pipeline, so both sources sort identically.
func BucketKey(t time.Time, g models.Granularity, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	switch g {
	case models.GranularityDay:
		return t.Format(time.DateOnly)
	case models.GranularityWeek:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case models.GranularityMonth:
		return t.Format("2006-01")
	case models.GranularityYear:
		return t.Format("2006")
	default:
		return ""
	}
}

func zoneName(loc *time.Location) string {
	if loc == nil || loc.String() == "Local" {
		return "UTC"
	}
	return loc.String()
}
