package dto

import "time"

// ErrorCode represents standardized error codes.
type ErrorCode string

const (
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
	ErrorCodeUnauthorized     ErrorCode = "AUTH_001"
	ErrorCodeForbidden        ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken     ErrorCode = "AUTH_003"
	ErrorCodeExpiredToken     ErrorCode = "AUTH_004"
)

// ErrorDetail represents detailed error information.
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Message string    `json:"message" example:"Invalid student id"`
	Details string    `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure.
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorDetail creates a new error detail.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithDetails adds context to the error detail.
func (e *ErrorDetail) WithDetails(details string) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response.
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
