package dto

import "time"

// SuccessResponse represents a message-only success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// APIResponse is the standard envelope for data-carrying responses.
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope.
func NewAPIResponse(data interface{}) *APIResponse {
	return &APIResponse{Data: data, Timestamp: time.Now()}
}
