package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/khronos/internal/calendar"
	"github.com/zapponejosh/khronos/internal/database"
	"github.com/zapponejosh/khronos/internal/observance"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeInvalidField      = "INVALID_FIELD"
	CodeOutOfRange        = "OUT_OF_RANGE"
	CodeUnknownCalendar   = "UNKNOWN_CALENDAR"
	CodeInvalidObservance = "INVALID_OBSERVANCE"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicate         = "DUPLICATE"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL_ERROR"
	CodeInternalInvariant = "INTERNAL_INVARIANT"
	CodeHealthCheckFailed = "HEALTH_CHECK_FAILED"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteCreated writes a 201 response.
func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// errorStatus maps a domain error to an HTTP status and error code.
// Unknown errors map to 500.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, calendar.ErrInvalidField):
		return http.StatusBadRequest, CodeInvalidField
	case errors.Is(err, calendar.ErrUnknownCalendar):
		return http.StatusBadRequest, CodeUnknownCalendar
	case errors.Is(err, calendar.ErrOutOfRange), errors.Is(err, observance.ErrYearRange):
		return http.StatusUnprocessableEntity, CodeOutOfRange
	case errors.Is(err, observance.ErrInvalid):
		return http.StatusBadRequest, CodeInvalidObservance
	case database.IsNotFound(err):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusConflict, CodeDuplicate
	case errors.Is(err, calendar.ErrInternalInvariant):
		return http.StatusInternalServerError, CodeInternalInvariant
	}
	return http.StatusInternalServerError, CodeInternal
}

// WriteDomainError writes err with the status its kind maps to. Server
// errors get a generic message; client errors echo err.
func WriteDomainError(w http.ResponseWriter, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Internal server error"
	}
	return WriteError(w, status, msg, code)
}
