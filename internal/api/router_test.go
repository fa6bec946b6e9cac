package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/guttosm/hotelboard/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-test-secret")

func bearer(t *testing.T, owner, role string) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, owner, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func newTestRouter(opts RouterOptions) (*gin.Engine, *mockReportService) {
	gin.SetMode(gin.TestMode)
	reports := &mockReportService{report: &models.Report{TotalRevenue: 700000}}
	opts.JWTSecret = testSecret
	if opts.RequiredRole == "" {
		opts.RequiredRole = "business"
	}
	return NewRouter(NewHandler(reports, &mockBusinessService{}, time.UTC), opts), reports
}

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	r, reports := newTestRouter(RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/api/business/dashboard/stats", nil)
	req.Header.Set("Authorization", bearer(t, testOwner, "business"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, testOwner, reports.gotOwner)

	var out models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 700000, out.TotalRevenue)
}

func TestNewRouter_AuthGuards(t *testing.T) {
	r, _ := newTestRouter(RouterOptions{})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing token", header: "", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong role", header: bearer(t, testOwner, "guest"), want: http.StatusForbidden},
		{name: "business role", header: bearer(t, testOwner, "business"), want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/business/hotels", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestNewRouter_RateLimitAndCORS(t *testing.T) {
	r, _ := newTestRouter(RouterOptions{
		Limiter:        middleware.NewMemoryLimiter(1, time.Minute),
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/business/dashboard/stats", nil)
		req.Header.Set("Authorization", bearer(t, testOwner, "business"))
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := call()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "http://localhost:5173", first.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusTooManyRequests, call().Code)
}
