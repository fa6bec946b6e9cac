// Package storagetest builds small datasets for tests of the reporting stack.
package storagetest

import (
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scenario is the two-owner dataset used across the service and storage tests:
//
//   - Owner owns H1 (3 active rooms, 1 inactive) and H2 (2 active rooms).
//   - Other owns H3 (1 active room).
//   - B1: H1, confirmed, 300000, checkIn now-5d, created this month.
//   - B2: H1, cancelled, 999999, checkIn now-3d, created this month.
//   - B3: H2, confirmed, 400000, checkIn now-40d, created six months ago.
//   - B4: H3, confirmed, 1000000, checkIn now-2d, created this month.
//   - Reviews of Owner rate 4, 5, 4; Other's hotel has a single 1.
//   - Settlements: two months for Owner, one for Other.
type Scenario struct {
	Now   time.Time
	Owner primitive.ObjectID
	Other primitive.ObjectID

	H1, H2, H3     primitive.ObjectID
	B1, B2, B3, B4 primitive.ObjectID
	R1             primitive.ObjectID // H1 room booked by B1
	H3Room         primitive.ObjectID
	ReviewH3       primitive.ObjectID

	Dataset storage.Dataset
}

// NewScenario builds the scenario around now, which should not fall in the
// first day of a month so B1 and its checkIn stay in the current month.
func NewScenario(now time.Time) *Scenario {
	s := &Scenario{
		Now:      now,
		Owner:    primitive.NewObjectID(),
		Other:    primitive.NewObjectID(),
		H1:       primitive.NewObjectID(),
		H2:       primitive.NewObjectID(),
		H3:       primitive.NewObjectID(),
		B1:       primitive.NewObjectID(),
		B2:       primitive.NewObjectID(),
		B3:       primitive.NewObjectID(),
		B4:       primitive.NewObjectID(),
		R1:       primitive.NewObjectID(),
		ReviewH3: primitive.NewObjectID(),
	}
	day := 24 * time.Hour
	created := now.Add(-time.Hour)

	hotel := func(id, owner primitive.ObjectID, name string, age time.Duration) models.Hotel {
		return models.Hotel{ID: id, OwnerID: owner, Name: name, City: "Seoul", IsActive: true, IsApproved: true, CreatedAt: now.Add(-age)}
	}
	room := func(id, hotel primitive.ObjectID, name string, active bool) models.Room {
		return models.Room{ID: id, HotelID: hotel, Name: name, Type: "standard", Capacity: 2, BasePrice: 100000, IsActive: active}
	}
	h2Room := primitive.NewObjectID()
	s.H3Room = primitive.NewObjectID()
	h3Room := s.H3Room

	s.Dataset = storage.Dataset{
		Hotels: []models.Hotel{
			hotel(s.H1, s.Owner, "Grand Hotel Seoul", 400*day),
			hotel(s.H2, s.Owner, "Busan Beach Resort", 300*day),
			hotel(s.H3, s.Other, "Jeju Ocean Hotel", 200*day),
		},
		Rooms: []models.Room{
			room(s.R1, s.H1, "Deluxe Double", true),
			room(primitive.NewObjectID(), s.H1, "Standard Twin", true),
			room(primitive.NewObjectID(), s.H1, "Suite", true),
			room(primitive.NewObjectID(), s.H1, "Closed Wing", false),
			room(h2Room, s.H2, "Ocean View", true),
			room(primitive.NewObjectID(), s.H2, "Garden View", true),
			room(h3Room, s.H3, "Family Room", true),
		},
		Bookings: []models.Booking{
			{ID: s.B1, HotelID: s.H1, RoomID: s.R1, GuestName: "Kim Minsu", CheckIn: now.Add(-5 * day), CheckOut: now.Add(-3 * day), TotalPrice: 300000, Status: models.BookingConfirmed, CreatedAt: created},
			{ID: s.B2, HotelID: s.H1, RoomID: s.R1, GuestName: "Lee Jiyoung", CheckIn: now.Add(-3 * day), CheckOut: now.Add(day), TotalPrice: 999999, Status: models.BookingCancelled, CreatedAt: created},
			{ID: s.B3, HotelID: s.H2, RoomID: h2Room, GuestName: "Park Sungho", CheckIn: now.Add(-40 * day), CheckOut: now.Add(-38 * day), TotalPrice: 400000, Status: models.BookingConfirmed, CreatedAt: now.AddDate(0, -6, 0)},
			{ID: s.B4, HotelID: s.H3, RoomID: h3Room, GuestName: "Choi Yuna", CheckIn: now.Add(-2 * day), CheckOut: now.Add(2 * day), TotalPrice: 1000000, Status: models.BookingConfirmed, CreatedAt: created},
		},
		Reviews: []models.Review{
			{ID: primitive.NewObjectID(), HotelID: s.H1, AuthorName: "Kim Minsu", Rating: 4, Comment: "Great location", CreatedAt: now.Add(-3 * day)},
			{ID: primitive.NewObjectID(), HotelID: s.H1, AuthorName: "Han Seojun", Rating: 5, Comment: "Perfect stay", CreatedAt: now.Add(-2 * day)},
			{ID: primitive.NewObjectID(), HotelID: s.H2, AuthorName: "Park Sungho", Rating: 4, Comment: "Nice view", CreatedAt: now.Add(-30 * day)},
			{ID: s.ReviewH3, HotelID: s.H3, AuthorName: "Choi Yuna", Rating: 1, Comment: "Noisy", CreatedAt: now.Add(-day)},
		},
		Settlements: []models.Settlement{
			{ID: primitive.NewObjectID(), BusinessUser: s.Owner, Month: "2025-04", TotalRevenue: 1000000, PlatformFee: 100000, Tax: 10000, FinalAmount: 890000, Status: "completed"},
			{ID: primitive.NewObjectID(), BusinessUser: s.Owner, Month: "2025-05", TotalRevenue: 500000, PlatformFee: 50000, Tax: 5000, FinalAmount: 445000, Status: "pending"},
			{ID: primitive.NewObjectID(), BusinessUser: s.Other, Month: "2025-05", TotalRevenue: 900000, PlatformFee: 90000, Tax: 9000, FinalAmount: 801000, Status: "completed"},
		},
	}
	return s
}

// OwnerHotels returns the hotel ids of Owner.
func (s *Scenario) OwnerHotels() []primitive.ObjectID {
	return []primitive.ObjectID{s.H1, s.H2}
}
