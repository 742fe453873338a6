package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/admin"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/respond"
	"github.com/jekabolt/grbpwr-insights/internal/metrics"
	"github.com/jekabolt/grbpwr-insights/internal/middleware"
	"github.com/jekabolt/grbpwr-insights/log"
)

// Config is the configuration for the http server
type Config struct {
	Port            string        `mapstructure:"port"`
	Address         string        `mapstructure:"address"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the routing tree.
func (s *Server) Handler(adminServer *admin.Server, authServer *auth.Server, db Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		log.RequestLogger(slog.Default()),
		chimw.Recoverer,
		metrics.Instrument,
		cors.Handler(cors.Options{
			AllowOriginFunc: func(r *http.Request, origin string) bool {
				return isOriginAllowed(origin, s.c.AllowedOrigins)
			},
			AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", middleware.TenantHeader, middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}),
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			respond.Error(w, r, fmt.Errorf("database unreachable: %w", err))
			return
		}
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Mount("/api/auth", authServer.Router())
	r.Mount("/api/admin", authServer.WithAuth(adminServer.Router()))

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	adminServer *admin.Server,
	authServer *auth.Server,
	db Pinger,
) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(adminServer, authServer, db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "grbpwr-insights new listener",
			slog.String("addr", fmt.Sprintf("http://%v", listenerAddr)),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	timeout := s.c.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
