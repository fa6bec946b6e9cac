package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		pingErr bool
		path    string
		want    int
	}{
		{name: "healthz ok", pingErr: false, path: "/healthz", want: 200},
		{name: "readyz ok", pingErr: false, path: "/readyz", want: 200},
		{name: "readyz degraded", pingErr: true, path: "/readyz", want: 503},
		{name: "metrics exposed", pingErr: false, path: "/metrics", want: 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ping := func(context.Context) error { return nil }
			if tc.pingErr {
				ping = func(context.Context) error { return assertErr{} }
			}

			reg := prometheus.NewRegistry()
			counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_test_total"})
			reg.MustRegister(counter)
			counter.Inc()

			r := gin.New()
			NewHealthHandler(ping, reg).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if tc.path == "/metrics" && !strings.Contains(w.Body.String(), "probe_test_total 1") {
				t.Fatalf("metrics body missing counter: %s", w.Body.String())
			}
		})
	}
}

func TestHealthHandler_NoGatherer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(nil, nil).Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz without ping: want 200 got %d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
