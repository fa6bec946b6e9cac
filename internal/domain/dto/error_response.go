package dto

import "time"

// ErrorResponse is the JSON body of every failed request.
//
// Message is safe to show to the caller; ErrorDetails carries the
// underlying error text for diagnostics and may be empty.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to build dashboard"`
	ErrorDetails string    `json:"error,omitempty" example:"aggregate bookings: connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-06-01T10:00:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
