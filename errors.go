package backoffice

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeTokenExpired   = "TOKEN_EXPIRED"
	TextCodeTokenMalformed = "TOKEN_MALFORMED"
	TextCodeAuthFailure    = "AUTH_FAILURE"
)

// ErrTokenExpired is returned when the stored credential's expiry claim is in the past.
var ErrTokenExpired = goerrors.New("authentication token is expired", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenMalformed is returned when the stored credential cannot be decoded.
var ErrTokenMalformed = goerrors.New("authentication token is malformed", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// APIError carries the status and payload of a failed backend request. Every
// non-2xx response surfaces as one of these, wrapped with category metadata.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// IsAuthFailure reports whether err carries an authentication-failure response.
// Transport errors with no distinguishable response are never auth failures, so
// a network outage does not force a logout.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if goerrors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return false
}

// ServerMessage extracts the server-supplied display message from err, falling
// back to the given generic one.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if goerrors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// IsTokenExpiredError will check for expired credentials
func IsTokenExpiredError(err error) bool {
	return hasTextCode(err, TextCodeTokenExpired)
}

// IsMalformedError will check for undecodable credentials
func IsMalformedError(err error) bool {
	return hasTextCode(err, TextCodeTokenMalformed)
}

func hasTextCode(err error, code string) bool {
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.TextCode == code
}
