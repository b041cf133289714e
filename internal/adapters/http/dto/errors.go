// Package dto holds the wire types of the quotes API and the helpers that
// write them.
package dto

import "net/http"

// Messages carried by the flat error body. Existing front-ends match on
// these strings, so they must not change.
const (
	MessageNotFound        = "Не найдено"
	MessageTextAndAuthor   = "Нужны текст и автор"
	MessageInternalFailure = "Внутренняя ошибка"
)

// FlatError is the {"error": "..."} body every quote endpoint uses.
type FlatError struct {
	Error string `json:"error"`
}

// NewFlatError creates a flat error body.
func NewFlatError(message string) *FlatError {
	return &FlatError{Error: message}
}

// Codes for the structured envelope. The envelope is only used where the
// request never reached quote logic.
const (
	ErrorCodeBadRequest = "BAD_REQUEST"
	ErrorCodeTimeout    = "TIMEOUT"
)

// ErrorResponse is the structured envelope for malformed bodies and
// timeouts.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the payload of ErrorResponse.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates an envelope for code.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// WithTraceID sets the trace id and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps an envelope code to its status. Unknown codes
// are treated as server faults.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
