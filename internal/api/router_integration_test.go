//go:build integration
// +build integration

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/hotelboard/config"
	"github.com/guttosm/hotelboard/internal/app"
	"github.com/guttosm/hotelboard/internal/middleware"
	"github.com/guttosm/hotelboard/internal/seed"
)

func startMongo(t *testing.T) (uri string, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort(nat.Port("27017/tcp")).WithStartupTimeout(90 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "27017/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", h, mp.Port())
	terminate = func() { _ = c.Terminate(context.Background()) }
	return uri, terminate
}

func TestAPI_E2E_SeededDashboard(t *testing.T) {
	uri, term := startMongo(t)
	defer term()

	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "0"},
		Mongo:  config.MongoConfig{URI: uri, Database: "hotelboard_e2e", Timeout: 30 * time.Second},
		Report: config.ReportConfig{
			Source:          "live",
			OccupancyPolicy: "trailing_30d",
			Timezone:        "Asia/Seoul",
			RecentLimit:     5,
		},
		Auth: config.AuthConfig{JWTSecret: "e2e-secret", RequiredRole: "business"},
	}

	// Seed the demo bundle through the same source the API reads.
	ctx := context.Background()
	_, mongoSrc, closeSeed, err := app.OpenSource(ctx, config.AppConfig)
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	bundle, err := seed.Load("")
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	if _, err := seed.Run(ctx, mongoSrc, bundle, time.Now(), false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	closeSeed()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	token, err := middleware.IssueToken([]byte("e2e-secret"), "64b000000000000000000001", "business", time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := get("/api/business/dashboard/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	var report struct {
		TotalRevenue   int64 `json:"totalRevenue"`
		ReviewCount    int64 `json:"reviewCount"`
		RecentBookings []struct {
			HotelName string `json:"hotelName"`
			RoomName  string `json:"roomName"`
		} `json:"recentBookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("json: %v", err)
	}
	// Non-cancelled bookings of the first owner's three hotels.
	if report.TotalRevenue != 3350000 || report.ReviewCount != 5 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.RecentBookings) != 5 || report.RecentBookings[0].HotelName == "" || report.RecentBookings[0].RoomName == "" {
		t.Fatalf("recent bookings not joined: %+v", report.RecentBookings)
	}

	if w := get("/api/business/hotels/64b100000000000000000004"); w.Code != http.StatusNotFound {
		t.Fatalf("foreign hotel: want 404 got %d", w.Code)
	}
	if w := get("/api/business/reviews/64b400000000000000000005"); w.Code != http.StatusForbidden {
		t.Fatalf("foreign review: want 403 got %d", w.Code)
	}

	w = get("/api/business/hotels/64b100000000000000000001/rooms")
	var rooms []map[string]any
	if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &rooms) != nil || len(rooms) != 2 {
		t.Fatalf("rooms: status %d body=%s", w.Code, w.Body.String())
	}
	if w := get("/api/business/rooms/64b200000000000000000007"); w.Code != http.StatusNotFound {
		t.Fatalf("foreign room: want 404 got %d", w.Code)
	}
}
