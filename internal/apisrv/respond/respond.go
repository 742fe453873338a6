// Package respond writes JSON bodies and the inline error panel of the admin API.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

type ErrorBody struct {
	Error ErrorPanel `json:"error"`
}

type ErrorPanel struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// Error renders err as {"error": {"message", "code"}} with the status mapped by gerr.
// The underlying message is kept so the dashboard can show it inline.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := gerr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	JSON(w, r, status, ErrorBody{
		Error: ErrorPanel{
			Message: err.Error(),
			Code:    gerr.Code(err),
		},
	})
}
