package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/respond"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

type contextKey string

const (
	TenantHeader    = "X-Tenant-Id"
	RequestIDHeader = "X-Request-Id"

	tenantKey    contextKey = "tenant_id"
	requestIDKey contextKey = "request_id"
)

// Tenant reads the tenant id header into the request context and rejects requests without one.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(TenantHeader)
		if raw == "" {
			respond.Error(w, r, fmt.Errorf("%s header is required: %w", TenantHeader, gerr.ErrMissingTenant))
			return
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respond.Error(w, r, fmt.Errorf("%s header %q is not a tenant id: %w", TenantHeader, raw, gerr.ErrMissingTenant))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), id)))
	})
}

func WithTenant(ctx context.Context, tenantId int) context.Context {
	return context.WithValue(ctx, tenantKey, tenantId)
}

// TenantFromContext returns the tenant placed by Tenant.
func TenantFromContext(ctx context.Context) (int, error) {
	id, ok := ctx.Value(tenantKey).(int)
	if !ok {
		return 0, gerr.ErrMissingTenant
	}
	return id, nil
}

// RequestID propagates the caller's request id or generates a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
