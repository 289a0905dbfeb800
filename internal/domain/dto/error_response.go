package dto

import "time"

// ErrorResponse is the standard JSON error envelope returned by the API.
//
// Fields:
//   - Message: human-readable summary of what failed.
//   - ErrorDetails: underlying error text, omitted when not relevant.
//   - Timestamp: when the error was produced.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request"`
	ErrorDetails string    `json:"error,omitempty" example:"quantity must be positive"`
	Timestamp    time.Time `json:"timestamp" example:"2026-03-02T09:15:00Z"`
}

// NewErrorResponse builds an ErrorResponse, capturing err.Error() when err
// is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
