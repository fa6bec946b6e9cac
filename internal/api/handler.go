package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/domain/dto"
	"github.com/guttosm/hotelboard/internal/middleware"
	"github.com/guttosm/hotelboard/internal/service"
)

// Handler provides HTTP handlers for the business back-office endpoints.
//
// Responsibilities:
//   - Read the authenticated owner and raw query parameters
//   - Delegate to the report and business services (which validate them)
//   - Translate service results into response DTOs
//   - Map service errors to status codes via middleware.RespondError
type Handler struct {
	reports  service.ReportService
	business service.BusinessService
	loc      *time.Location
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - reports: dashboard, chart and statistics computations.
//   - business: hotel, review and settlement reads.
//   - loc: zone used to render day-level dates of review listings.
func NewHandler(reports service.ReportService, business service.BusinessService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{reports: reports, business: business, loc: loc}
}

func reportQuery(c *gin.Context) service.ReportQuery {
	return service.ReportQuery{
		Period:  c.Query("period"),
		GroupBy: c.Query("groupBy"),
		From:    c.Query("from"),
		To:      c.Query("to"),
	}
}

// DashboardStats godoc
// @Summary      Owner dashboard
// @Description  Totals, month-to-date figures, rating, occupancy, six-month revenue chart and recent activity of the owner's hotels
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Report       "Success"
// @Failure      401  {object}  dto.ErrorResponse   "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse   "Owner not found"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/business/dashboard/stats [get]
func (h *Handler) DashboardStats(c *gin.Context) {
	report, err := h.reports.Dashboard(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, report)
}

// DashboardRevenueChart godoc
// @Summary      Dashboard revenue series
// @Description  Revenue and booking count per month (last 12), ISO week (last 12) or year (last 5)
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "month | week | year"  default(month)
// @Param        from    query     string  false  "Range start, YYYY-MM-DD or RFC3339"  example(2025-01-01)
// @Param        to      query     string  false  "Range end (inclusive day), YYYY-MM-DD or RFC3339"  example(2025-06-30)
// @Success      200     {object}  dto.ChartSeriesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/business/dashboard/revenue-chart [get]
func (h *Handler) DashboardRevenueChart(c *gin.Context) {
	points, err := h.reports.RevenueSeries(c.Request.Context(), middleware.OwnerID(c), reportQuery(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to load chart data")
		return
	}
	c.JSON(http.StatusOK, dto.OK(points))
}

// Statistics godoc
// @Summary      Revenue, booking and occupancy statistics
// @Description  Total (or ranged), month-to-date and day-to-date revenue and bookings, plus occupancy
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Range start, YYYY-MM-DD or RFC3339"
// @Param        to    query     string  false  "Range end, YYYY-MM-DD or RFC3339"
// @Success      200   {object}  dto.StatisticsResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/business/statistics [get]
func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.reports.Statistics(c.Request.Context(), middleware.OwnerID(c), reportQuery(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, dto.OK(stats))
}

// StatisticsRevenueChart godoc
// @Summary      Revenue chart
// @Description  Revenue and bookings as parallel arrays grouped by day (last 30 days), month (last 12) or year (last 5)
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        groupBy  query     string  false  "day | month | year"  default(month)
// @Param        from     query     string  false  "Range start, YYYY-MM-DD or RFC3339"
// @Param        to       query     string  false  "Range end, YYYY-MM-DD or RFC3339"
// @Success      200      {object}  dto.ChartDataResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/business/statistics/revenue/chart [get]
func (h *Handler) StatisticsRevenueChart(c *gin.Context) {
	data, err := h.reports.RevenueChart(c.Request.Context(), middleware.OwnerID(c), reportQuery(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to load chart data")
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

// ListHotels godoc
// @Summary      Owner hotels
// @Description  The owner's hotels with active room count, review count and average rating
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HotelListResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/business/hotels [get]
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.business.Hotels(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to list hotels")
		return
	}
	c.JSON(http.StatusOK, dto.NewHotelListResponse(hotels))
}

// GetHotel godoc
// @Summary      Owner hotel
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  models.Hotel       "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/business/hotels/{id} [get]
func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.business.Hotel(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "failed to load hotel")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// ListRooms godoc
// @Summary      Rooms of an owner hotel
// @Description  Every room of the hotel, inactive ones included, as a bare array
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {array}   models.Room        "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/business/hotels/{id}/rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.business.Rooms(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom godoc
// @Summary      Owner room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  models.Room        "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/business/rooms/{id} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.business.Room(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "failed to load room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListReviews godoc
// @Summary      Reviews of the owner's hotels
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReviewListResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/business/reviews [get]
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.business.Reviews(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		middleware.RespondError(c, err, "failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewListResponse(reviews, h.loc))
}

// GetReview godoc
// @Summary      Review of an owned hotel
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  dto.ReviewItem     "Success"
// @Failure      403  {object}  dto.ErrorResponse  "Forbidden"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/business/reviews/{id} [get]
func (h *Handler) GetReview(c *gin.Context) {
	review, err := h.business.Review(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "failed to load review")
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewItem(*review, h.loc))
}

// ListSettlements godoc
// @Summary      Owner settlements
// @Description  Monthly settlements, latest first, with the sum of final amounts
// @Tags         settlements
// @Produce      json
// @Security     BearerAuth
// @Param        month   query     string  false  "YYYY-MM"  example(2025-05)
// @Param        status  query     string  false  "Settlement status"
// @Success      200     {object}  dto.SettlementListResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse           "Bad Request"
// @Router       /api/business/settlements [get]
func (h *Handler) ListSettlements(c *gin.Context) {
	sum, err := h.business.Settlements(c.Request.Context(), middleware.OwnerID(c), c.Query("month"), c.Query("status"))
	if err != nil {
		middleware.RespondError(c, err, "failed to list settlements")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementListResponse{Settlements: sum.Settlements, TotalAmount: sum.TotalAmount})
}
