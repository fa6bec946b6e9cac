package storage

import "github.com/guttosm/hotelboard/internal/domain/models"

// Dataset is a complete set of reporting records. It backs MemorySource and
// is what the seeder writes into MongoDB.
type Dataset struct {
	Hotels      []models.Hotel      `bson:"hotels"`
	Rooms       []models.Room       `bson:"rooms"`
	Bookings    []models.Booking    `bson:"bookings"`
	Reviews     []models.Review     `bson:"reviews"`
	Settlements []models.Settlement `bson:"settlements"`
}

// Counts returns the number of records per collection.
func (d Dataset) Counts() map[string]int {
	return map[string]int{
		HotelsCollection:      len(d.Hotels),
		RoomsCollection:       len(d.Rooms),
		BookingsCollection:    len(d.Bookings),
		ReviewsCollection:     len(d.Reviews),
		SettlementsCollection: len(d.Settlements),
	}
}

// Total is the number of records across all collections.
func (d Dataset) Total() int {
	n := 0
	for _, c := range d.Counts() {
		n += c
	}
	return n
}
