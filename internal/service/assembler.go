package service

import (
	"fmt"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
)

// dashboardChartPoints caps the dashboard revenue chart.
const dashboardChartPoints = 6

// reportParts are the aggregator results of one dashboard request.
type reportParts struct {
	all      models.Totals
	month    models.Totals
	rating   models.RatingSummary
	occ      models.Occupancy
	chart    []models.ChartPoint
	bookings []models.RecentBooking
	reviews  []models.RecentReview
}

// assemble builds the dashboard. Zero parts give the same shape with zero
// numbers and empty lists.
func (p reportParts) assemble(loc *time.Location) *models.Report {
	r := &models.Report{
		TotalRevenue:        p.all.Revenue,
		MonthlyRevenue:      p.month.Revenue,
		BookingCount:        p.all.Bookings,
		MonthlyBookingCount: p.month.Bookings,
		AverageRating:       p.rating.Average,
		ReviewCount:         p.rating.Count,
		OccupancyRate:       p.occ.Rate,
		ChartData:           dashboardChart(p.chart),
		RecentBookings:      make([]models.RecentBookingItem, 0, len(p.bookings)),
		RecentReviews:       make([]models.RecentReviewItem, 0, len(p.reviews)),
	}
	for _, b := range p.bookings {
		r.RecentBookings = append(r.RecentBookings, models.RecentBookingItem{
			ID:         b.ID.Hex(),
			GuestName:  b.GuestName,
			HotelName:  b.HotelName,
			RoomName:   b.RoomName,
			CheckIn:    formatDay(b.CheckIn, loc),
			CheckOut:   formatDay(b.CheckOut, loc),
			TotalPrice: b.TotalPrice,
			Status:     b.Status,
		})
	}
	for _, rv := range p.reviews {
		r.RecentReviews = append(r.RecentReviews, models.RecentReviewItem{
			ID:         rv.ID.Hex(),
			AuthorName: rv.AuthorName,
			HotelName:  rv.HotelName,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			CreatedAt:  rv.CreatedAt,
		})
	}
	return r
}

func formatDay(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.DateOnly)
}

// dashboardChart keeps the latest six monthly points and labels them
// "<year>년 <month>월".
func dashboardChart(points []models.ChartPoint) models.ChartData {
	if len(points) > dashboardChartPoints {
		points = points[len(points)-dashboardChartPoints:]
	}
	data := toChartData(points)
	for i, key := range data.Labels {
		data.Labels[i] = monthLabel(key)
	}
	return data
}

func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// toChartData splits points into parallel label/revenue/bookings arrays.
func toChartData(points []models.ChartPoint) models.ChartData {
	data := models.ChartData{
		Labels:   make([]string, 0, len(points)),
		Revenue:  make([]int64, 0, len(points)),
		Bookings: make([]int64, 0, len(points)),
	}
	for _, p := range points {
		data.Labels = append(data.Labels, p.Label)
		data.Revenue = append(data.Revenue, p.Revenue)
		data.Bookings = append(data.Bookings, p.Bookings)
	}
	return data
}

// assembleStatistics builds the nested statistics view.
func assembleStatistics(total, month, day models.Totals, occ models.Occupancy) *models.Statistics {
	return &models.Statistics{
		Revenue:   models.WindowedTotals{Total: total.Revenue, Monthly: month.Revenue, Daily: day.Revenue},
		Bookings:  models.WindowedTotals{Total: total.Bookings, Monthly: month.Bookings, Daily: day.Bookings},
		Occupancy: occ,
	}
}
