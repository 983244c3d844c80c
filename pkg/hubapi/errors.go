package hubapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Chickencurry27/artisthub/pkg/httpx"
)

// Error codes returned in the "error" field of failure responses.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidSession     = "invalid_session"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeWeakPassword       = "weak_password"
	ErrorCodeInvalidResetToken  = "invalid_reset_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeLimitReached       = "limit_reached"
	ErrorCodeAlreadyExists      = "already_exists"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire shape of every failure response. It implements the
// error interface so the client SDK can return it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request is malformed or fails
	// validation.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned for a failed login. Unknown email
	// and wrong password produce this same response.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrInvalidSession is returned when no valid session accompanies a
	// request that requires one.
	ErrInvalidSession = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidSession,
		Description: "authentication required",
	}

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailTaken,
		Description: "an account with this email already exists",
	}

	// ErrWeakPassword is returned when a password fails the length policy.
	ErrWeakPassword = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeWeakPassword,
		Description: "password must be at least 8 characters",
	}

	// ErrInvalidResetToken is returned for unknown, used, and expired reset
	// tokens alike.
	ErrInvalidResetToken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidResetToken,
		Description: "the reset link is invalid or has expired",
	}

	// ErrNotFound is returned when the resource does not exist or does not
	// belong to the caller; the two cases are indistinguishable.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrLimitReached is returned when a subscription ceiling blocks the
	// operation.
	ErrLimitReached = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeLimitReached,
		Description: "subscription limit reached, upgrade to continue",
	}

	// ErrAlreadyExists is returned on unique-constraint conflicts, such as
	// two clients with the same email.
	ErrAlreadyExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyExists,
		Description: "a resource with these details already exists",
	}

	// ErrServerError is the catch-all for internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
