package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/fixtures"
	"github.com/guttosm/hotelboard/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner is a business account of a bundle. Accounts live in the auth
// service; the bundle carries them only so demo tokens can be issued.
type Owner struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// Bundle is a fixture file: a named dataset whose dates are expressed
// relative to Anchor.
type Bundle struct {
	Name            string    `bson:"name"`
	Anchor          time.Time `bson:"anchor"`
	Owners          []Owner   `bson:"owners"`
	storage.Dataset `bson:",inline"`
}

// Decode parses an Extended JSON (relaxed or canonical) bundle and checks
// its references.
func Decode(data []byte) (*Bundle, error) {
	var b Bundle
	if err := bson.UnmarshalExtJSON(data, false, &b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Load reads the bundle at path, or the embedded demo bundle when path is empty.
func Load(path string) (*Bundle, error) {
	if path == "" {
		return Decode(fixtures.Demo)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	return Decode(data)
}

// validate enforces the structure the reporting queries rely on: every
// document has an id, and rooms, bookings and reviews point at hotels (and
// rooms) of the same bundle.
func (b *Bundle) validate() error {
	if b.Name == "" {
		return fmt.Errorf("bundle: missing name")
	}
	if b.Anchor.IsZero() {
		return fmt.Errorf("bundle %s: missing anchor", b.Name)
	}

	hotels := make(map[primitive.ObjectID]struct{}, len(b.Hotels))
	for i, h := range b.Hotels {
		if h.ID.IsZero() || h.OwnerID.IsZero() {
			return fmt.Errorf("bundle %s: hotel %d: missing _id or ownerId", b.Name, i)
		}
		hotels[h.ID] = struct{}{}
	}
	rooms := make(map[primitive.ObjectID]primitive.ObjectID, len(b.Rooms))
	for i, r := range b.Rooms {
		if _, ok := hotels[r.HotelID]; !ok || r.ID.IsZero() {
			return fmt.Errorf("bundle %s: room %d: unknown hotel or missing _id", b.Name, i)
		}
		rooms[r.ID] = r.HotelID
	}
	for i, bk := range b.Bookings {
		if hotel, ok := rooms[bk.RoomID]; !ok || hotel != bk.HotelID || bk.ID.IsZero() {
			return fmt.Errorf("bundle %s: booking %d: room does not belong to hotel", b.Name, i)
		}
		if !bk.CheckOut.After(bk.CheckIn) {
			return fmt.Errorf("bundle %s: booking %d: checkOut must follow checkIn", b.Name, i)
		}
	}
	for i, r := range b.Reviews {
		if _, ok := hotels[r.HotelID]; !ok || r.ID.IsZero() {
			return fmt.Errorf("bundle %s: review %d: unknown hotel or missing _id", b.Name, i)
		}
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("bundle %s: review %d: rating %d out of 1..5", b.Name, i, r.Rating)
		}
	}
	for i, s := range b.Settlements {
		if _, err := time.Parse("2006-01", s.Month); err != nil || s.ID.IsZero() {
			return fmt.Errorf("bundle %s: settlement %d: month must be YYYY-MM", b.Name, i)
		}
	}
	return nil
}

// Rebased returns the bundle's dataset with every date moved so the anchor
// falls on the day of now. Settlement months move by the same number of
// calendar months as the anchor does.
func (b *Bundle) Rebased(now time.Time) storage.Dataset {
	anchor := b.Anchor.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	anchorDay := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	shift := today.Sub(anchorDay)
	months := (today.Year()-anchorDay.Year())*12 + int(today.Month()-anchorDay.Month())

	move := func(t time.Time) time.Time {
		if t.IsZero() {
			return t
		}
		return t.Add(shift)
	}

	src := b.Dataset
	ds := storage.Dataset{
		Hotels:      make([]models.Hotel, len(src.Hotels)),
		Rooms:       make([]models.Room, len(src.Rooms)),
		Bookings:    make([]models.Booking, len(src.Bookings)),
		Reviews:     make([]models.Review, len(src.Reviews)),
		Settlements: make([]models.Settlement, len(src.Settlements)),
	}
	for i, h := range src.Hotels {
		h.CreatedAt, h.UpdatedAt = move(h.CreatedAt), move(h.UpdatedAt)
		ds.Hotels[i] = h
	}
	for i, r := range src.Rooms {
		r.CreatedAt = move(r.CreatedAt)
		ds.Rooms[i] = r
	}
	for i, bk := range src.Bookings {
		bk.CheckIn, bk.CheckOut = move(bk.CheckIn), move(bk.CheckOut)
		bk.CreatedAt, bk.UpdatedAt = move(bk.CreatedAt), move(bk.UpdatedAt)
		ds.Bookings[i] = bk
	}
	for i, r := range src.Reviews {
		r.CreatedAt = move(r.CreatedAt)
		if r.Reply != nil {
			reply := *r.Reply
			reply.CreatedAt = move(reply.CreatedAt)
			r.Reply = &reply
		}
		ds.Reviews[i] = r
	}
	for i, s := range src.Settlements {
		if m, err := time.Parse("2006-01", s.Month); err == nil {
			s.Month = m.AddDate(0, months, 0).Format("2006-01")
		}
		if s.PaymentDate != nil {
			paid := move(*s.PaymentDate)
			s.PaymentDate = &paid
		}
		ds.Settlements[i] = s
	}
	return ds
}
