package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/domain/dto"
)

// ErrorHandler renders the last error attached with c.Error when the handler
// did not write a response itself.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	_ = c.Error(err) // in a handler
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	RespondError(c, c.Errors.Last().Err, "Internal server error")
}

// AbortWithError stops the chain and writes an ErrorResponse with status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// RespondError maps err to its HTTP status. Client errors expose their own
// message; server errors use fallback as the message and the error text as
// the detail.
func RespondError(c *gin.Context, err error, fallback string) {
	status := apperr.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		AbortWithError(c, status, apperr.PublicMessage(err, fallback), nil)
		return
	}
	AbortWithError(c, status, fallback, err)
}
