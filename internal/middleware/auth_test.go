package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/hotelboard/internal/domain/dto"
)

var testSecret = []byte("test-secret")

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := "665f1c2e8b3e4a0012345678"

	valid, err := IssueToken(testSecret, owner, "business", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	guest, _ := IssueToken(testSecret, owner, "user", time.Hour)
	expired, _ := IssueToken(testSecret, owner, "business", -time.Hour)
	foreign, _ := IssueToken([]byte("other"), owner, "business", time.Hour)
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "business", RegisteredClaims: jwt.RegisteredClaims{Subject: owner}}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := []struct {
		name    string
		header  string
		code    int
		message string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "missing bearer token"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "missing bearer token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "invalid token"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "invalid token"},
		{"alg none", "Bearer " + noneAlg, http.StatusUnauthorized, "invalid token"},
		{"wrong role", "Bearer " + guest, http.StatusForbidden, "business account required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(Auth(testSecret, "business"))
			r.GET("/", func(c *gin.Context) {
				seen = OwnerID(c)
				c.String(http.StatusOK, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("code=%d want %d body=%s", w.Code, tc.code, w.Body.String())
			}
			if tc.code == http.StatusOK {
				if seen != owner {
					t.Fatalf("owner=%q want %q", seen, owner)
				}
				return
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.message || body.ErrorDetails != "" {
				t.Fatalf("body=%+v want message %q without details", body, tc.message)
			}
		})
	}
}

func TestAuth_AnyRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token, _ := IssueToken(testSecret, "665f1c2e8b3e4a0012345678", "admin", time.Hour)
	r := gin.New()
	r.Use(Auth(testSecret, ""))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RoleKey)) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "admin" {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}
