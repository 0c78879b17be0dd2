// Package common holds the shared HTTP response envelope and helpers.
// Separate from handlers so the router and middleware can use the same
// types without import cycles.
package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/epcqr/pkg/epc"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError points at a single offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// API error codes. The validation codes mirror the epc error kinds one to
// one so clients can map them straight onto form fields.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInvalidFormat   = "INVALID_FORMAT"
	ErrCodeInvalidChecksum = "INVALID_CHECKSUM"
	ErrCodeInvalidAmount   = "INVALID_AMOUNT"
	ErrCodeInvalidPurpose  = "INVALID_PURPOSE_CODE"
	ErrCodeTextTooLong     = "TEXT_TOO_LONG"
	ErrCodeMissingField    = "MISSING_REQUIRED_FIELD"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// RequestIDKey is the gin context key the request-ID middleware fills.
const RequestIDKey = "request_id"

// GetRequestID returns the request ID set by the middleware, or "".
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// Success sends a 2xx envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// Error sends an error envelope.
func Error(c *gin.Context, status int, apiErr *APIError) {
	c.JSON(status, APIResponse{
		Success:   false,
		Error:     apiErr,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// BadRequestResponse sends a 400 with a plain message.
func BadRequestResponse(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
	})
}

// NotFoundResponse sends a 404.
func NotFoundResponse(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
	})
}

// InternalErrorResponse sends a 500 without leaking internals.
func InternalErrorResponse(c *gin.Context) {
	Error(c, http.StatusInternalServerError, &APIError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred",
	})
}

// HandleDomainError maps an epc validation failure onto the API envelope.
// Every domain error kind is a 422: the request was readable, the payload
// content was not acceptable.
func HandleDomainError(c *gin.Context, err error) {
	apiErr := &APIError{
		Code:    errorCode(err),
		Message: err.Error(),
	}

	var valErr *epc.ValidationError
	if errors.As(err, &valErr) {
		apiErr.Fields = []FieldError{{
			Field:   valErr.Field,
			Message: valErr.Message,
			Code:    apiErr.Code,
		}}
	}

	Error(c, http.StatusUnprocessableEntity, apiErr)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, epc.ErrInvalidChecksum):
		return ErrCodeInvalidChecksum
	case errors.Is(err, epc.ErrInvalidAmount):
		return ErrCodeInvalidAmount
	case errors.Is(err, epc.ErrInvalidPurposeCode):
		return ErrCodeInvalidPurpose
	case errors.Is(err, epc.ErrTextTooLong):
		return ErrCodeTextTooLong
	case errors.Is(err, epc.ErrMissingRequiredField):
		return ErrCodeMissingField
	case errors.Is(err, epc.ErrInvalidFormat):
		return ErrCodeInvalidFormat
	default:
		return ErrCodeValidation
	}
}
