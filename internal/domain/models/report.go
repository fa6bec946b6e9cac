package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Granularity is the time bucket used to group bookings for chart series.
type Granularity string

const (
	// GranularityNone folds every matching booking into a single bucket.
	GranularityNone  Granularity = ""
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// BookingBucket is one group of an AggregateBookings query.
// Key is empty for GranularityNone, otherwise a sortable label such as
// "2025-06", "2025-06-01", "2025-W23" or "2025".
type BookingBucket struct {
	Key     string `bson:"_id"`
	Revenue int64  `bson:"revenue"`
	Count   int64  `bson:"count"`
}

// ReviewAggregate is the raw average and count of review ratings.
type ReviewAggregate struct {
	Average float64 `bson:"avgRating"`
	Count   int64   `bson:"count"`
}

// RecentBooking is a booking joined with its hotel and room names.
type RecentBooking struct {
	ID         primitive.ObjectID `bson:"_id"`
	GuestName  string             `bson:"guestName"`
	HotelName  string             `bson:"hotelName"`
	RoomName   string             `bson:"roomName"`
	CheckIn    time.Time          `bson:"checkIn"`
	CheckOut   time.Time          `bson:"checkOut"`
	TotalPrice int64              `bson:"totalPrice"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// RecentReview is a review joined with its hotel name.
type RecentReview struct {
	ID         primitive.ObjectID `bson:"_id"`
	AuthorName string             `bson:"authorName"`
	HotelName  string             `bson:"hotelName"`
	Rating     int                `bson:"rating"`
	Comment    string             `bson:"comment"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// Totals is the revenue/booking-count result of one time window.
type Totals struct {
	Revenue  int64
	Bookings int64
}

// RatingSummary is the rounded review rating aggregate.
type RatingSummary struct {
	Average float64
	Count   int64
}

// Occupancy is the occupancy aggregate. Rate is a whole percentage in [0,100].
type Occupancy struct {
	Rate        int64 `json:"rate" example:"20"`
	TotalRooms  int64 `json:"totalRooms" example:"5"`
	BookedRooms int64 `json:"bookedRooms" example:"1"`
}

// ChartPoint is one (label, revenue, bookings) triple of a chart series.
type ChartPoint struct {
	Label    string `json:"label" example:"2025-06"`
	Revenue  int64  `json:"revenue" example:"300000"`
	Bookings int64  `json:"bookings" example:"1"`
}

// ChartData is a chart series split into parallel arrays, the layout the
// front-end charts consume.
type ChartData struct {
	Labels   []string `json:"labels"`
	Revenue  []int64  `json:"revenue"`
	Bookings []int64  `json:"bookings"`
}

// RecentBookingItem is a row of the dashboard's recent bookings list.
type RecentBookingItem struct {
	ID         string `json:"id"`
	GuestName  string `json:"guestName"`
	HotelName  string `json:"hotelName"`
	RoomName   string `json:"roomName"`
	CheckIn    string `json:"checkIn" example:"2025-06-01"`
	CheckOut   string `json:"checkOut" example:"2025-06-03"`
	TotalPrice int64  `json:"totalPrice"`
	Status     string `json:"status"`
}

// RecentReviewItem is a row of the dashboard's recent reviews list.
type RecentReviewItem struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	HotelName  string    `json:"hotelName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Report is the owner dashboard. Its JSON field names are a public contract
// of the business front-end; lists are never nil.
//
// swagger:model Report
type Report struct {
	TotalRevenue        int64               `json:"totalRevenue" example:"700000"`
	MonthlyRevenue      int64               `json:"monthlyRevenue" example:"300000"`
	BookingCount        int64               `json:"bookingCount" example:"2"`
	MonthlyBookingCount int64               `json:"monthlyBookingCount" example:"1"`
	AverageRating       float64             `json:"averageRating" example:"4.3"`
	ReviewCount         int64               `json:"reviewCount" example:"3"`
	OccupancyRate       int64               `json:"occupancyRate" example:"20"`
	ChartData           ChartData           `json:"chartData"`
	RecentBookings      []RecentBookingItem `json:"recentBookings"`
	RecentReviews       []RecentReviewItem  `json:"recentReviews"`
}

// WindowedTotals holds one measure over the all-time (or ranged), month-to-date
// and day-to-date windows.
type WindowedTotals struct {
	Total   int64 `json:"total"`
	Monthly int64 `json:"monthly"`
	Daily   int64 `json:"daily"`
}

// Statistics is the nested statistics view of the business owner.
//
// swagger:model Statistics
type Statistics struct {
	Revenue   WindowedTotals `json:"revenue"`
	Bookings  WindowedTotals `json:"bookings"`
	Occupancy Occupancy      `json:"occupancy"`
}

// HotelSummary is a hotel decorated with its room and review statistics.
type HotelSummary struct {
	Hotel
	RoomCount     int64   `json:"roomCount"`
	ReviewCount   int64   `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
}
