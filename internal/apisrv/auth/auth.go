package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/respond"
	"github.com/jekabolt/grbpwr-insights/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-insights/internal/auth/pwhash"
	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/jekabolt/grbpwr-insights/internal/middleware"
	"github.com/jekabolt/grbpwr-insights/internal/ratelimit"
)

const (
	// AuthHeader is header key to match auth token
	AuthHeader = "Authorization"
)

type subjectKey struct{}

// Server issues and checks admin tokens.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	masterHash      string
	limiter         *ratelimit.LoginLimiter
	proxies         middleware.TrustedProxies
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string                `mapstructure:"jwt_secret"`
	MasterPassword           string                `mapstructure:"master_password"`
	PasswordHasherSaltSize   int                   `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int                   `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string                `mapstructure:"jwt_ttl"`
	LoginLimit               ratelimit.LoginConfig `mapstructure:"login_limit"`
	// TrustedProxies may set the client address through X-Forwarded-For.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not set")
	}
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("bad jwt ttl %q: %w", c.JWTTTL, err)
	}
	proxies, err := middleware.ParseTrustedProxies(c.TrustedProxies)
	if err != nil {
		return nil, err
	}
	return &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:          ttl,
		masterHash:      hash,
		limiter:         ratelimit.NewLoginLimiter(c.LoginLimit),
		proxies:         proxies,
	}, nil
}

// Router serves the auth endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", s.Login)
	r.Post("/admins", s.CreateAdmin)
	return r
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

type CreateAdminRequest struct {
	MasterPassword string `json:"master_password"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// Login issues a token for valid admin credentials.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("bad login body: %v: %w", err, gerr.ErrInvalidRequest))
		return
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	ip := s.proxies.ClientIP(r)
	if err := s.limiter.CheckLogin(ip, username); err != nil {
		slog.Default().WarnContext(r.Context(), "login throttled",
			slog.String("username", username),
			slog.String("client_ip", ip),
			slog.String("err", err.Error()),
		)
		respond.Error(w, r, err)
		return
	}

	pwHash, err := s.adminRepository.PasswordHashByUsername(r.Context(), username)
	if err != nil {
		slog.Default().InfoContext(r.Context(), "login for unknown admin",
			slog.String("username", username),
			slog.String("err", err.Error()),
		)
		respond.Error(w, r, gerr.ErrUnauthenticated)
		return
	}
	if err := s.pwhash.Validate(req.Password, pwHash); err != nil {
		respond.Error(w, r, fmt.Errorf("%v: %w", err, gerr.ErrUnauthenticated))
		return
	}
	s.limiter.Succeeded(username)

	s.issue(w, r, username)
}

// CreateAdmin adds an admin user; it requires the master password.
func (s *Server) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("bad admin body: %v: %w", err, gerr.ErrInvalidRequest))
		return
	}
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		respond.Error(w, r, gerr.ErrUnauthenticated)
		return
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		respond.Error(w, r, fmt.Errorf("username and password are required: %w", gerr.ErrInvalidRequest))
		return
	}

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := s.adminRepository.AddAdmin(r.Context(), username, pwHash); err != nil {
		if errors.Is(err, gerr.ErrAdminExists) {
			slog.Default().InfoContext(r.Context(), "admin already exists",
				slog.String("username", username),
			)
		}
		respond.Error(w, r, err)
		return
	}

	s.issue(w, r, username)
}

func (s *Server) issue(w http.ResponseWriter, r *http.Request, username string) {
	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, LoginResponse{AuthToken: token})
}

// WithAuth middleware checks if the user is authenticated.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get(AuthHeader), "Bearer ")
		sub, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			respond.Error(w, r, fmt.Errorf("invalid token %v: %w", err, gerr.ErrUnauthenticated))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey{}, sub)))
	})
}

// Close stops background work of the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

// AdminFromContext returns the username of the authenticated admin.
func AdminFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey{}).(string)
	return sub
}
