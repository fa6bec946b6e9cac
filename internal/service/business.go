package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/storage"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// hotelStatsConcurrency bounds the per-hotel queries of a hotel listing.
const hotelStatsConcurrency = 4

// BusinessService serves the owner's hotels, reviews and settlements.
type BusinessService interface {
	Hotels(ctx context.Context, ownerID string) ([]models.HotelSummary, error)
	Hotel(ctx context.Context, ownerID, hotelID string) (*models.Hotel, error)
	Rooms(ctx context.Context, ownerID, hotelID string) ([]models.Room, error)
	Room(ctx context.Context, ownerID, roomID string) (*models.Room, error)
	Reviews(ctx context.Context, ownerID string) ([]models.ReviewWithHotel, error)
	Review(ctx context.Context, ownerID, reviewID string) (*models.ReviewWithHotel, error)
	Settlements(ctx context.Context, ownerID, month, status string) (*SettlementSummary, error)
}

// SettlementSummary is the filtered settlement list and the sum of its
// final amounts.
type SettlementSummary struct {
	Settlements []models.Settlement
	TotalAmount int64
}

type businessService struct {
	src storage.ReportSource
}

// NewBusinessService builds the owner read service over src.
func NewBusinessService(src storage.ReportSource) BusinessService {
	return &businessService{src: src}
}

// Hotels lists the owner's hotels, newest first, each with its active room
// count, review count and rounded average rating.
func (s *businessService) Hotels(ctx context.Context, ownerID string) ([]models.HotelSummary, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	hotels, err := s.src.FindHotelsByOwner(ctx, owner)
	if err != nil {
		return nil, apperr.Store(err, "find hotels")
	}

	out := make([]models.HotelSummary, len(hotels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hotelStatsConcurrency)
	for i, h := range hotels {
		i, h := i, h
		g.Go(func() error {
			ids := []primitive.ObjectID{h.ID}
			rooms, err := s.src.CountActiveRooms(gctx, ids)
			if err != nil {
				return apperr.Store(err, "count hotel rooms")
			}
			reviews, err := s.src.AggregateReviews(gctx, ids)
			if err != nil {
				return apperr.Store(err, "aggregate hotel reviews")
			}
			out[i] = models.HotelSummary{Hotel: h, RoomCount: rooms, ReviewCount: reviews.Count}
			if reviews.Count > 0 {
				out[i].AverageRating = roundRating(reviews.Average)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Hotel returns one of the owner's hotels. A hotel of another owner is
// reported as missing.
func (s *businessService) Hotel(ctx context.Context, ownerID, hotelID string) (*models.Hotel, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hotelID))
	if err != nil {
		return nil, apperr.NotFound("hotel not found")
	}
	h, err := s.src.FindHotelByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "find hotel")
	}
	if h == nil || h.OwnerID != owner {
		return nil, apperr.NotFound("hotel not found")
	}
	return h, nil
}

// Rooms lists every room of one of the owner's hotels, inactive ones
// included. The hotel is resolved like Hotel.
func (s *businessService) Rooms(ctx context.Context, ownerID, hotelID string) ([]models.Room, error) {
	h, err := s.Hotel(ctx, ownerID, hotelID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.src.FindRoomsByHotel(ctx, h.ID)
	if err != nil {
		return nil, apperr.Store(err, "find rooms")
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// Room returns one room of the owner's hotels. A room whose hotel belongs to
// another owner is reported as missing, as hotels are.
func (s *businessService) Room(ctx context.Context, ownerID, roomID string) (*models.Room, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(roomID))
	if err != nil {
		return nil, apperr.NotFound("room not found")
	}
	r, err := s.src.FindRoomByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "find room")
	}
	if r == nil {
		return nil, apperr.NotFound("room not found")
	}
	h, err := s.src.FindHotelByID(ctx, r.HotelID)
	if err != nil {
		return nil, apperr.Store(err, "find room hotel")
	}
	if h == nil || h.OwnerID != owner {
		return nil, apperr.NotFound("room not found")
	}
	return r, nil
}

// Reviews lists every review of the owner's hotels, newest first.
func (s *businessService) Reviews(ctx context.Context, ownerID string) ([]models.ReviewWithHotel, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	ids, err := s.src.FindHotelIDsByOwner(ctx, owner)
	if err != nil {
		return nil, apperr.Store(err, "resolve owner hotels")
	}
	if len(ids) == 0 {
		return []models.ReviewWithHotel{}, nil
	}
	reviews, err := s.src.FindReviews(ctx, ids)
	if err != nil {
		return nil, apperr.Store(err, "find reviews")
	}
	return reviews, nil
}

// Review returns one review; 404 when it does not exist, 403 when its hotel
// belongs to another owner.
func (s *businessService) Review(ctx context.Context, ownerID, reviewID string) (*models.ReviewWithHotel, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(reviewID))
	if err != nil {
		return nil, apperr.NotFound("review not found")
	}
	r, err := s.src.FindReviewByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "find review")
	}
	if r == nil {
		return nil, apperr.NotFound("review not found")
	}
	if r.HotelOwnerID != owner {
		return nil, apperr.Forbidden("review belongs to another owner")
	}
	return r, nil
}

// Settlements lists the owner's settlements, latest month first, optionally
// filtered by month (YYYY-MM) and status.
func (s *businessService) Settlements(ctx context.Context, ownerID, month, status string) (*SettlementSummary, error) {
	owner, err := ParseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	month, status = strings.TrimSpace(month), strings.TrimSpace(status)
	if month != "" && !validMonth(month) {
		return nil, apperr.Validationf("invalid month %q, expected YYYY-MM", month)
	}
	list, err := s.src.FindSettlements(ctx, storage.SettlementQuery{BusinessUser: owner, Month: month, Status: status})
	if err != nil {
		return nil, apperr.Store(err, "find settlements")
	}
	if list == nil {
		list = []models.Settlement{}
	}
	total := decimal.Zero
	for _, st := range list {
		total = total.Add(decimal.NewFromInt(st.FinalAmount))
	}
	return &SettlementSummary{Settlements: list, TotalAmount: total.IntPart()}, nil
}

func validMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
