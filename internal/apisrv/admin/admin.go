package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/respond"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/dto"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/jekabolt/grbpwr-insights/internal/form"
	"github.com/jekabolt/grbpwr-insights/internal/middleware"
)

// Server implements handlers for admin.
type Server struct {
	resolver    *daterange.Resolver
	reporter    dependency.ClientReporter
	categorizer dependency.ClientCategorizer
	clients     dependency.Clients
}

// New creates a new server with admin handlers.
func New(
	resolver *daterange.Resolver,
	reporter dependency.ClientReporter,
	categorizer dependency.ClientCategorizer,
	clients dependency.Clients,
) *Server {
	return &Server{
		resolver:    resolver,
		reporter:    reporter,
		categorizer: categorizer,
		clients:     clients,
	}
}

// Router serves the admin endpoints. Client routes are tenant scoped.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/windows/presets", s.GetPresetWindows)
	r.Route("/clients", func(r chi.Router) {
		r.Use(middleware.Tenant)
		r.Get("/categories", s.GetClientCategories)
		r.Get("/categories/{kind}/{category}/members", s.GetCategoryMembers)
		r.Get("/{id}", s.GetClientIdentity)
	})
	return r
}

// GetClientCategories returns behavior and spending partitions for the requested window,
// optionally paired with a comparison window.
func (s *Server) GetClientCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantId, err := middleware.TenantFromContext(ctx)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q := form.WindowQueryFromValues(r.URL.Query())
	if err := q.Validate(); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmp, err := s.resolver.ResolveComparison(q.Request())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	rep, err := s.reporter.Report(ctx, tenantId, cmp)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build client categories report",
			slog.Int("tenant_id", tenantId),
			slog.String("err", err.Error()),
		)
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.ConvertEntityClientCategoriesReport(rep))
}

// GetCategoryMembers lists the clients of one category in the requested window.
func (s *Server) GetCategoryMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantId, err := middleware.TenantFromContext(ctx)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	mq := &form.MembersQuery{
		Kind:     chi.URLParam(r, "kind"),
		Category: chi.URLParam(r, "category"),
	}
	if err := mq.Validate(); err != nil {
		respond.Error(w, r, err)
		return
	}
	q := form.WindowQueryFromValues(r.URL.Query())
	if err := q.Validate(); err != nil {
		respond.Error(w, r, err)
		return
	}
	win, err := s.resolver.Resolve(q.Request())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	members, err := s.categorizer.Members(ctx, tenantId, win, mq.Filter())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.ConvertEntityClientsCategorized(members))
}

// GetClientIdentity returns name and contacts of one client.
func (s *Server) GetClientIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantId, err := middleware.TenantFromContext(ctx)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respond.Error(w, r, fmt.Errorf("client id %q: %w", chi.URLParam(r, "id"), gerr.ErrInvalidRequest))
		return
	}

	c, err := s.clients.ClientIdentity(ctx, tenantId, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.ConvertEntityClientIdentity(c))
}

// GetPresetWindows lists supported presets with their bounds for today.
func (s *Server) GetPresetWindows(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, dto.ConvertPresetWindows(s.resolver.PresetWindows()))
}
