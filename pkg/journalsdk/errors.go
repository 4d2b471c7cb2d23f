package journalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Well-known error codes returned by the API.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeConflict       = "conflict"
	ErrCodeTagReserved    = "tag_name_reserved"
	ErrCodeAccountDeleted = "account_pending_deletion"
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeServerError    = "server_error"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// APIError is an API error usable on both sides of the wire: handlers write
// it as a response, the SDK client returns it from calls.
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable explanation.
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// WithDescription returns a copy with a more specific description.
func (e *APIError) WithDescription(desc string) *APIError {
	clone := *e
	clone.Description = desc
	return &clone
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrCodeUnauthorized,
		Description: "a valid access token is required",
	}

	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrCodeForbidden,
		Description: "the caller is not allowed to perform this operation",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrCodeNotFound,
		Description: "the requested resource does not exist",
	}

	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrCodeConflict,
		Description: "the resource already exists",
	}

	ErrTagReserved = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrCodeTagReserved,
		Description: "the tag name is reserved by a global tag",
	}

	ErrAccountDeleted = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrCodeAccountDeleted,
		Description: "the account is pending deletion; cancel the deletion to continue",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrCodeServerError,
		Description: "an unexpected error occurred",
	}
)
