package gerr

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidWindow   = errors.New("invalid date window")
	ErrInvalidPolicy   = errors.New("invalid categorization policy")
	ErrUnknownCategory = errors.New("unknown category")
	ErrClientNotFound  = errors.New("client not found")
	ErrMissingTenant   = errors.New("missing tenant")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrAdminExists     = errors.New("admin already exists")
)

// HTTPStatus maps an error chain to the status code rendered by the admin API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidWindow),
		errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrMissingTenant),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAdminExists):
		return http.StatusConflict
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Code is a short machine-readable token for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrInvalidWindow):
		return "invalid_window"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, ErrMissingTenant):
		return "missing_tenant"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrClientNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidPolicy):
		return "invalid_policy"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrAdminExists):
		return "conflict"
	case errors.Is(err, ErrTooManyRequests):
		return "too_many_requests"
	default:
		return "internal"
	}
}
