package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemorySource implements ReportSource over an in-memory Dataset. It serves
// the fixture (demo/offline) mode and gives the service tests a store with
// the same semantics as the Mongo pipelines.
type MemorySource struct {
	mu sync.RWMutex
	ds Dataset
}

// NewMemorySource returns a source over ds.
func NewMemorySource(ds Dataset) *MemorySource {
	return &MemorySource{ds: ds}
}

// Replace swaps the whole dataset.
func (m *MemorySource) Replace(ds Dataset) {
	m.mu.Lock()
	m.ds = ds
	m.mu.Unlock()
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]struct{} {
	set := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (m *MemorySource) FindHotelIDsByOwner(_ context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := []primitive.ObjectID{}
	for _, h := range m.ds.Hotels {
		if h.OwnerID == ownerID {
			ids = append(ids, h.ID)
		}
	}
	return ids, nil
}

func (m *MemorySource) AggregateBookings(_ context.Context, q BookingQuery) ([]models.BookingBucket, error) {
	if len(q.HotelIDs) == 0 {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := idSet(q.HotelIDs)
	buckets := map[string]*models.BookingBucket{}
	for _, b := range m.ds.Bookings {
		if _, ok := hotels[b.HotelID]; !ok {
			continue
		}
		if q.ExcludeStatus != "" && b.Status == q.ExcludeStatus {
			continue
		}
		if q.CreatedFrom != nil && b.CreatedAt.Before(*q.CreatedFrom) {
			continue
		}
		if q.CreatedTo != nil && !b.CreatedAt.Before(*q.CreatedTo) {
			continue
		}
		key := BucketKey(b.CreatedAt, q.GroupBy, q.Location)
		bk, ok := buckets[key]
		if !ok {
			bk = &models.BookingBucket{Key: key}
			buckets[key] = bk
		}
		bk.Revenue += b.TotalPrice
		bk.Count++
	}

	out := make([]models.BookingBucket, 0, len(buckets))
	for _, bk := range buckets {
		out = append(out, *bk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemorySource) AggregateReviews(_ context.Context, hotelIDs []primitive.ObjectID) (models.ReviewAggregate, error) {
	var agg models.ReviewAggregate
	if len(hotelIDs) == 0 {
		return agg, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := idSet(hotelIDs)
	sum := 0
	for _, r := range m.ds.Reviews {
		if _, ok := hotels[r.HotelID]; ok {
			sum += r.Rating
			agg.Count++
		}
	}
	if agg.Count > 0 {
		agg.Average = float64(sum) / float64(agg.Count)
	}
	return agg, nil
}

func (m *MemorySource) CountActiveRooms(_ context.Context, hotelIDs []primitive.ObjectID) (int64, error) {
	if len(hotelIDs) == 0 {
		return 0, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := idSet(hotelIDs)
	var n int64
	for _, r := range m.ds.Rooms {
		if _, ok := hotels[r.HotelID]; ok && r.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *MemorySource) CountDistinctRoomsCheckedInSince(_ context.Context, hotelIDs []primitive.ObjectID, since time.Time) (int64, error) {
	if len(hotelIDs) == 0 {
		return 0, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := idSet(hotelIDs)
	rooms := map[primitive.ObjectID]struct{}{}
	for _, b := range m.ds.Bookings {
		if _, ok := hotels[b.HotelID]; !ok || b.Status == models.BookingCancelled {
			continue
		}
		if !b.CheckIn.Before(since) {
			rooms[b.RoomID] = struct{}{}
		}
	}
	return int64(len(rooms)), nil
}

func (m *MemorySource) CountBookingsSpanning(_ context.Context, hotelIDs []primitive.ObjectID, day time.Time, statuses []string) (int64, error) {
	if len(hotelIDs) == 0 || len(statuses) == 0 {
		return 0, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := idSet(hotelIDs)
	wanted := map[string]bool{}
	for _, s := range statuses {
		wanted[s] = true
	}
	var n int64
	for _, b := range m.ds.Bookings {
		if _, ok := hotels[b.HotelID]; !ok || !wanted[b.Status] {
			continue
		}
		if !b.CheckIn.After(day) && b.CheckOut.After(day) {
			n++
		}
	}
	return n, nil
}

func (m *MemorySource) names() (hotels map[primitive.ObjectID]models.Hotel, rooms map[primitive.ObjectID]string) {
	hotels = make(map[primitive.ObjectID]models.Hotel, len(m.ds.Hotels))
	for _, h := range m.ds.Hotels {
		hotels[h.ID] = h
	}
	rooms = make(map[primitive.ObjectID]string, len(m.ds.Rooms))
	for _, r := range m.ds.Rooms {
		rooms[r.ID] = r.Name
	}
	return hotels, rooms
}

func (m *MemorySource) FindRecentBookings(_ context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentBooking, error) {
	if len(hotelIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	scope := idSet(hotelIDs)
	hotels, rooms := m.names()
	var out []models.RecentBooking
	for _, b := range m.ds.Bookings {
		if _, ok := scope[b.HotelID]; !ok || b.Status == models.BookingCancelled {
			continue
		}
		out = append(out, models.RecentBooking{
			ID:         b.ID,
			GuestName:  b.GuestName,
			HotelName:  hotels[b.HotelID].Name,
			RoomName:   rooms[b.RoomID],
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			TotalPrice: b.TotalPrice,
			Status:     b.Status,
			CreatedAt:  b.CreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// reviewsWhere returns joined reviews matching keep, newest first.
func (m *MemorySource) reviewsWhere(keep func(models.Review) bool) []models.ReviewWithHotel {
	hotels, _ := m.names()
	var out []models.ReviewWithHotel
	for _, r := range m.ds.Reviews {
		if !keep(r) {
			continue
		}
		h := hotels[r.HotelID]
		out = append(out, models.ReviewWithHotel{Review: r, HotelName: h.Name, HotelOwnerID: h.OwnerID})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *MemorySource) FindRecentReviews(_ context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentReview, error) {
	if len(hotelIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	scope := idSet(hotelIDs)
	joined := m.reviewsWhere(func(r models.Review) bool {
		_, ok := scope[r.HotelID]
		return ok
	})
	if len(joined) > limit {
		joined = joined[:limit]
	}
	out := make([]models.RecentReview, 0, len(joined))
	for _, r := range joined {
		out = append(out, models.RecentReview{
			ID:         r.ID,
			AuthorName: r.AuthorName,
			HotelName:  r.HotelName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

func (m *MemorySource) FindHotelsByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Hotel
	for _, h := range m.ds.Hotels {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemorySource) FindHotelByID(_ context.Context, id primitive.ObjectID) (*models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.ds.Hotels {
		if h.ID == id {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (m *MemorySource) FindRoomsByHotel(_ context.Context, hotelID primitive.ObjectID) ([]models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Room
	for _, r := range m.ds.Rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (m *MemorySource) FindRoomByID(_ context.Context, id primitive.ObjectID) (*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.ds.Rooms {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (m *MemorySource) FindReviews(_ context.Context, hotelIDs []primitive.ObjectID) ([]models.ReviewWithHotel, error) {
	if len(hotelIDs) == 0 {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	scope := idSet(hotelIDs)
	return m.reviewsWhere(func(r models.Review) bool {
		_, ok := scope[r.HotelID]
		return ok
	}), nil
}

func (m *MemorySource) FindReviewByID(_ context.Context, id primitive.ObjectID) (*models.ReviewWithHotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	found := m.reviewsWhere(func(r models.Review) bool { return r.ID == id })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *MemorySource) FindSettlements(_ context.Context, q SettlementQuery) ([]models.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Settlement
	for _, st := range m.ds.Settlements {
		if st.BusinessUser != q.BusinessUser {
			continue
		}
		if (q.Month != "" && st.Month != q.Month) || (q.Status != "" && st.Status != q.Status) {
			continue
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

func (m *MemorySource) Ping(context.Context) error { return nil }

var (
	_ ReportSource = (*MemorySource)(nil)
	_ ReportSource = (*MongoSource)(nil)
	_ SeedStore    = (*MongoSource)(nil)
)
