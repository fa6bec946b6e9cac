package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses stored in the "status" field.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a reservation of one room (collection "bookings").
//
// CreatedAt drives revenue timing and chart buckets; CheckIn/CheckOut drive
// occupancy. Cancelled bookings never contribute to any metric.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HotelID        primitive.ObjectID `bson:"hotelId" json:"hotelId"`
	RoomID         primitive.ObjectID `bson:"roomId" json:"roomId"`
	GuestName      string             `bson:"guestName" json:"guestName"`
	GuestEmail     string             `bson:"guestEmail,omitempty" json:"guestEmail"`
	GuestPhone     string             `bson:"guestPhone,omitempty" json:"guestPhone"`
	CheckIn        time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut       time.Time          `bson:"checkOut" json:"checkOut"`
	NumberOfGuests int                `bson:"numberOfGuests,omitempty" json:"numberOfGuests"`
	TotalPrice     int64              `bson:"totalPrice" json:"totalPrice"`
	Status         string             `bson:"status" json:"status"`
	PaymentStatus  string             `bson:"paymentStatus,omitempty" json:"paymentStatus"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
