package graph

import (
	"errors"
	"net/http"
)

// Failure kinds surfaced by this package. Errors returned by Client
// operations wrap exactly one of these, so callers can classify with
// errors.Is without inspecting message text.
var (
	// ErrAuth indicates the token exchange failed or a token was rejected.
	ErrAuth = errors.New("graph: authentication failed")

	// ErrNoCredential indicates no client credential was available at all.
	// The operation fails before any request is issued.
	ErrNoCredential = errors.New("graph: no credential available")

	// ErrFetch indicates a report page request failed. The whole record
	// stream is aborted; prior pages are never re-emitted in its place.
	ErrFetch = errors.New("graph: fetch failed")

	// ErrInvalidQuery indicates malformed or contradictory query parameters.
	ErrInvalidQuery = errors.New("graph: invalid query")
)

// Error types for Microsoft Graph API responses.
var (
	// ErrUnauthorised indicates the access token is invalid or expired.
	ErrUnauthorised = errors.New("graph: unauthorised")

	// ErrForbidden indicates the app lacks permission for the requested report.
	ErrForbidden = errors.New("graph: forbidden")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("graph: not found")

	// ErrRateLimited indicates the request was throttled by Microsoft Graph.
	ErrRateLimited = errors.New("graph: rate limited")

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = errors.New("graph: bad request")

	// ErrServerError indicates a server-side error from Microsoft Graph.
	ErrServerError = errors.New("graph: server error")
)

// WrapError converts an HTTP status code to an appropriate error.
func WrapError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorised
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		if statusCode >= 500 {
			return ErrServerError
		}
		return nil
	}
}

// IsUnauthorised checks if the status code indicates an authentication failure.
func IsUnauthorised(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}

// IsRateLimited checks if the status code indicates rate limiting.
func IsRateLimited(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests
}

// IsNotFound checks if the status code indicates a missing resource.
func IsNotFound(statusCode int) bool {
	return statusCode == http.StatusNotFound
}
