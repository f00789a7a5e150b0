package dto

// MessageResponse is the standard success body for operations without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the wire shape of every error body.
// Error carries the underlying detail and is omitted when redacted.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse creates an error body with just a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewErrorResponseWithDetail creates an error body carrying the underlying detail
func NewErrorResponseWithDetail(message, detail string) ErrorResponse {
	return ErrorResponse{Message: message, Error: detail}
}
