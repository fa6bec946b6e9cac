package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/logger"
)

const (
	OwnerIDKey = "owner_id"
	RoleKey    = "role"
)

// Claims are the bearer token claims. Subject is the owner's hex ObjectID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for ownerID with role, valid for ttl.
func IssueToken(secret []byte, ownerID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "hotelboard",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func parseToken(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Auth verifies the bearer token and stores the owner id and role in the
// Gin context. An empty requiredRole accepts any role.
//
// Responses:
//   - 401 when the header is missing or the token does not verify.
//   - 403 when the role does not match requiredRole.
func Auth(secret []byte, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			RespondError(c, apperr.Unauthorized("missing bearer token"), "")
			return
		}
		claims, err := parseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("bearer token rejected")
			RespondError(c, apperr.Unauthorized("invalid token"), "")
			return
		}
		if requiredRole != "" && claims.Role != requiredRole {
			RespondError(c, apperr.Forbidden("business account required"), "")
			return
		}

		c.Set(OwnerIDKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// OwnerID returns the authenticated owner id, or "" before Auth ran.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}
