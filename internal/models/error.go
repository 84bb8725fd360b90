package models

// ErrorResponse is the single-message error body used by the restaurant routes
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the multi-message error body used by the association routes
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Response messages shared by handlers and tests
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
	MsgInvalidBody        = "invalid request body"
	MsgUnexpectedError    = "An unexpected error occurred"
)

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates an error body listing every message
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
