package dto

import (
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
)

// HotelListResponse is returned by GET /api/business/hotels.
// Listing is not paginated; totalPages and currentPage are always 1.
type HotelListResponse struct {
	Hotels      []models.HotelSummary `json:"hotels"`
	TotalPages  int                   `json:"totalPages" example:"1"`
	CurrentPage int                   `json:"currentPage" example:"1"`
	Total       int                   `json:"total" example:"2"`
}

// NewHotelListResponse builds a single-page hotel listing.
func NewHotelListResponse(hotels []models.HotelSummary) HotelListResponse {
	if hotels == nil {
		hotels = []models.HotelSummary{}
	}
	return HotelListResponse{Hotels: hotels, TotalPages: 1, CurrentPage: 1, Total: len(hotels)}
}

// ReviewItem is the review projection of the business front-end. Several
// fields are aliases kept for the review table (userName/authorName,
// starRating/rating, wroteOn/createdAt, content/comment).
type ReviewItem struct {
	ID         string              `json:"_id"`
	UserName   string              `json:"userName"`
	StarRating int                 `json:"starRating"`
	WroteOn    string              `json:"wroteOn" example:"2025-06-01"`
	HotelID    string              `json:"hotelId"`
	HotelName  string              `json:"hotelName"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	Reply      *models.ReviewReply `json:"reply"`
	Rating     int                 `json:"rating"`
	AuthorName string              `json:"authorName"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// NewReviewItem projects a joined review into a ReviewItem. wroteOn is
// rendered in loc.
func NewReviewItem(r models.ReviewWithHotel, loc *time.Location) ReviewItem {
	return ReviewItem{
		ID:         r.ID.Hex(),
		UserName:   r.AuthorName,
		StarRating: r.Rating,
		WroteOn:    r.CreatedAt.In(loc).Format(time.DateOnly),
		HotelID:    r.HotelID.Hex(),
		HotelName:  r.HotelName,
		Content:    r.Comment,
		Reply:      r.Reply,
		Rating:     r.Rating,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt,
	}
}

// ReviewListResponse is returned by GET /api/business/reviews.
type ReviewListResponse struct {
	Reviews     []ReviewItem `json:"reviews"`
	TotalPages  int          `json:"totalPages" example:"1"`
	CurrentPage int          `json:"currentPage" example:"1"`
	Total       int          `json:"total" example:"3"`
}

// NewReviewListResponse projects reviews into a single-page listing.
func NewReviewListResponse(reviews []models.ReviewWithHotel, loc *time.Location) ReviewListResponse {
	items := make([]ReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, NewReviewItem(r, loc))
	}
	return ReviewListResponse{Reviews: items, TotalPages: 1, CurrentPage: 1, Total: len(items)}
}

// SettlementListResponse is returned by GET /api/business/settlements.
// TotalAmount is the sum of finalAmount over the listed settlements.
type SettlementListResponse struct {
	Settlements []models.Settlement `json:"settlements"`
	TotalAmount int64               `json:"totalAmount" example:"1350000"`
}

// ChartSeriesResponse is the data of GET /api/business/dashboard/revenue-chart.
type ChartSeriesResponse = Envelope[[]models.ChartPoint]

// StatisticsResponse is the data of GET /api/business/statistics.
type StatisticsResponse = Envelope[models.Statistics]

// ChartDataResponse is the data of GET /api/business/statistics/revenue/chart.
type ChartDataResponse = Envelope[models.ChartData]
