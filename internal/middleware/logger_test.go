package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

// captureRequestLog serves one request through RequestID and RequestLogger
// and returns the decoded http_request entry.
func captureRequestLog(t *testing.T, target string, owner string, status int) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger.Init()
	logger.SetOutput(&buf)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/api/business/statistics", func(c *gin.Context) {
		if owner != "" {
			c.Set(OwnerIDKey, owner)
		}
		c.Status(status)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if entry["message"] == "http_request" {
			return entry, w
		}
	}
	t.Fatalf("no http_request entry in %q", buf.String())
	return nil, nil
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: http.StatusOK, level: "info"},
		{name: "client error", status: http.StatusNotFound, level: "warn"},
		{name: "server error", status: http.StatusInternalServerError, level: "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry, _ := captureRequestLog(t, "/api/business/statistics", "", tc.status)
			if entry["level"] != tc.level {
				t.Fatalf("level=%v, want %s", entry["level"], tc.level)
			}
			if entry["status"] != float64(tc.status) {
				t.Fatalf("status=%v, want %d", entry["status"], tc.status)
			}
		})
	}
}

func TestRequestLogger_Fields(t *testing.T) {
	entry, w := captureRequestLog(t, "/api/business/statistics?period=week", "64b000000000000000000001", http.StatusOK)

	want := map[string]any{
		"method":   http.MethodGet,
		"path":     "/api/business/statistics",
		"query":    "period=week",
		"owner_id": "64b000000000000000000001",
		"service":  "hotelboard",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("%s=%v, want %v", k, entry[k], v)
		}
	}
	rid := w.Header().Get("X-Request-ID")
	if rid == "" || entry["request_id"] != rid {
		t.Fatalf("request_id=%v, header=%q", entry["request_id"], rid)
	}
	if _, ok := entry["latency_ms"]; !ok {
		t.Fatalf("latency_ms missing from %v", entry)
	}
}

func TestRequestLogger_OmitsEmptyQueryAndOwner(t *testing.T) {
	entry, _ := captureRequestLog(t, "/api/business/statistics", "", http.StatusOK)

	for _, k := range []string{"query", "owner_id", "errors"} {
		if _, ok := entry[k]; ok {
			t.Fatalf("unexpected %s in %v", k, entry)
		}
	}
}
