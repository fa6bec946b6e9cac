package service

import (
	"fmt"
	"strings"
)

// OccupancyPolicy selects how booked rooms are counted. One policy is chosen
// per deployment and used by every endpoint.
type OccupancyPolicy string

const (
	// OccupancyTrailing30d counts distinct rooms of non-cancelled bookings
	// that checked in during the last 30 days.
	OccupancyTrailing30d OccupancyPolicy = "trailing_30d"
	// OccupancyPointInTime counts confirmed or pending bookings whose stay
	// contains today's midnight.
	OccupancyPointInTime OccupancyPolicy = "point_in_time"
)

// ParseOccupancyPolicy validates a configured policy name.
func ParseOccupancyPolicy(s string) (OccupancyPolicy, error) {
	switch p := OccupancyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case OccupancyTrailing30d, OccupancyPointInTime:
		return p, nil
	case "":
		return OccupancyTrailing30d, nil
	default:
		return "", fmt.Errorf("unknown occupancy policy %q", s)
	}
}
