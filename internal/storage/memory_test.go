package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/storage"
	"github.com/guttosm/hotelboard/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC) // 12:00 KST

func newMemory(t *testing.T) (*storage.MemorySource, *storagetest.Scenario) {
	t.Helper()
	sc := storagetest.NewScenario(testNow)
	return storage.NewMemorySource(sc.Dataset), sc
}

func TestMemorySource_FindHotelIDsByOwner(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()

	ids, err := src.FindHotelIDsByOwner(ctx, sc.Owner)
	require.NoError(t, err)
	assert.ElementsMatch(t, sc.OwnerHotels(), ids)

	ids, err = src.FindHotelIDsByOwner(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestMemorySource_AggregateBookings(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, seoul)

	tests := []struct {
		name string
		q    storage.BookingQuery
		want []models.BookingBucket
	}{
		{
			name: "all time excluding cancelled",
			q:    storage.BookingQuery{HotelIDs: sc.OwnerHotels(), ExcludeStatus: models.BookingCancelled},
			want: []models.BookingBucket{{Key: "", Revenue: 700000, Count: 2}},
		},
		{
			name: "cancelled included when not excluded",
			q:    storage.BookingQuery{HotelIDs: []primitive.ObjectID{sc.H1}},
			want: []models.BookingBucket{{Key: "", Revenue: 1299999, Count: 2}},
		},
		{
			name: "month to date",
			q:    storage.BookingQuery{HotelIDs: sc.OwnerHotels(), ExcludeStatus: models.BookingCancelled, CreatedFrom: &monthStart},
			want: []models.BookingBucket{{Key: "", Revenue: 300000, Count: 1}},
		},
		{
			name: "grouped by month ascending",
			q:    storage.BookingQuery{HotelIDs: sc.OwnerHotels(), ExcludeStatus: models.BookingCancelled, GroupBy: models.GranularityMonth, Location: seoul},
			want: []models.BookingBucket{{Key: "2024-12", Revenue: 400000, Count: 1}, {Key: "2025-06", Revenue: 300000, Count: 1}},
		},
		{
			name: "upper bound is exclusive",
			q:    storage.BookingQuery{HotelIDs: sc.OwnerHotels(), ExcludeStatus: models.BookingCancelled, CreatedTo: &monthStart},
			want: []models.BookingBucket{{Key: "", Revenue: 400000, Count: 1}},
		},
		{
			name: "empty scope",
			q:    storage.BookingQuery{ExcludeStatus: models.BookingCancelled},
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := src.AggregateBookings(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemorySource_AggregateReviews(t *testing.T) {
	src, sc := newMemory(t)
	agg, err := src.AggregateReviews(context.Background(), sc.OwnerHotels())
	require.NoError(t, err)
	assert.EqualValues(t, 3, agg.Count)
	assert.InDelta(t, 13.0/3.0, agg.Average, 1e-9)

	agg, err = src.AggregateReviews(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, agg)
}

func TestMemorySource_Occupancy(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()

	rooms, err := src.CountActiveRooms(ctx, sc.OwnerHotels())
	require.NoError(t, err)
	assert.EqualValues(t, 5, rooms)

	booked, err := src.CountDistinctRoomsCheckedInSince(ctx, sc.OwnerHotels(), testNow.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, booked)

	spanning, err := src.CountBookingsSpanning(ctx, []primitive.ObjectID{sc.H3}, testNow, []string{models.BookingConfirmed, models.BookingPending})
	require.NoError(t, err)
	assert.EqualValues(t, 1, spanning)

	// B2 spans today on H1 but is cancelled.
	spanning, err = src.CountBookingsSpanning(ctx, sc.OwnerHotels(), testNow, []string{models.BookingConfirmed, models.BookingPending})
	require.NoError(t, err)
	assert.Zero(t, spanning)
}

func TestMemorySource_Recent(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()

	bookings, err := src.FindRecentBookings(ctx, sc.OwnerHotels(), 5)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, sc.B1, bookings[0].ID)
	assert.Equal(t, "Grand Hotel Seoul", bookings[0].HotelName)
	assert.Equal(t, "Deluxe Double", bookings[0].RoomName)
	assert.Equal(t, sc.B3, bookings[1].ID)

	bookings, err = src.FindRecentBookings(ctx, sc.OwnerHotels(), 1)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	reviews, err := src.FindRecentReviews(ctx, sc.OwnerHotels(), 2)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Grand Hotel Seoul", reviews[0].HotelName)
}

func TestMemorySource_Reads(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()

	hotels, err := src.FindHotelsByOwner(ctx, sc.Owner)
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, sc.H2, hotels[0].ID, "newest first")

	h, err := src.FindHotelByID(ctx, sc.H3)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, sc.Other, h.OwnerID)

	h, err = src.FindHotelByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, h)

	r, err := src.FindReviewByID(ctx, sc.ReviewH3)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, sc.Other, r.HotelOwnerID)
	assert.Equal(t, "Jeju Ocean Hotel", r.HotelName)

	all, err := src.FindReviews(ctx, sc.OwnerHotels())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	settlements, err := src.FindSettlements(ctx, storage.SettlementQuery{BusinessUser: sc.Owner})
	require.NoError(t, err)
	require.Len(t, settlements, 2)
	assert.Equal(t, "2025-05", settlements[0].Month)

	settlements, err = src.FindSettlements(ctx, storage.SettlementQuery{BusinessUser: sc.Owner, Status: "completed"})
	require.NoError(t, err)
	require.Len(t, settlements, 1)
	assert.Equal(t, "2025-04", settlements[0].Month)
}

func TestBucketKey(t *testing.T) {
	seoul, _ := time.LoadLocation("Asia/Seoul")
	// 2024-12-31 20:00 UTC is 2025-01-01 05:00 in Seoul.
	ts := time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		g    models.Granularity
		loc  *time.Location
		want string
	}{
		{models.GranularityDay, seoul, "2025-01-01"},
		{models.GranularityDay, nil, "2024-12-31"},
		{models.GranularityWeek, seoul, "2025-W01"},
		{models.GranularityWeek, time.UTC, "2025-W01"},
		{models.GranularityMonth, seoul, "2025-01"},
		{models.GranularityYear, time.UTC, "2024"},
		{models.GranularityNone, seoul, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, storage.BucketKey(ts, tc.g, tc.loc), "%s/%v", tc.g, tc.loc)
	}
}

func TestDataset_Counts(t *testing.T) {
	_, sc := newMemory(t)
	counts := sc.Dataset.Counts()
	assert.Equal(t, 3, counts[storage.HotelsCollection])
	assert.Equal(t, 7, counts[storage.RoomsCollection])
	assert.Equal(t, 3+7+4+4+3, sc.Dataset.Total())
}

func TestMemorySource_Rooms(t *testing.T) {
	src, sc := newMemory(t)
	ctx := context.Background()

	rooms, err := src.FindRoomsByHotel(ctx, sc.H1)
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, sc.R1, rooms[0].ID)
	var inactive int
	for _, r := range rooms {
		assert.Equal(t, sc.H1, r.HotelID)
		if !r.IsActive {
			inactive++
		}
	}
	assert.Equal(t, 1, inactive)

	rooms, err = src.FindRoomsByHotel(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, rooms)

	room, err := src.FindRoomByID(ctx, sc.H3Room)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, sc.H3, room.HotelID)

	room, err = src.FindRoomByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, room)
}
