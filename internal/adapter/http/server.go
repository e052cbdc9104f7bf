package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitcore/internal/app"
	"fitcore/internal/domain"
	"fitcore/internal/metrics"
)

// Services are the application services the HTTP adapter drives.
type Services struct {
	Auth         *app.AuthService
	Profiles     *app.ProfileService
	Measurements *app.MeasurementService
	Intake       *app.IntakeService
	Nutrition    *app.NutritionService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc        Services
	oidcConfig OIDCConfig
	metrics    *metrics.Manager
	gatherer   prometheus.Gatherer

	disableAuth bool
	testUser    *domain.User
}

type Option func(*Server)

// WithOIDC enables single sign-on through the given provider.
func WithOIDC(cfg OIDCConfig) Option {
	return func(s *Server) { s.oidcConfig = cfg }
}

// WithMetrics records request metrics on m and serves g on /metrics.
func WithMetrics(m *metrics.Manager, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// New creates a Server wired to the given application services.
func New(svc Services, opts ...Option) *Server {
	s := &Server{svc: svc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithoutAuth skips session checks and runs every request as user 1. For tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	s.testUser = &domain.User{ID: 1, Email: "test@example.com"}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/logout", s.handleLogout)
	api.HandleFunc("/setup", s.handleSetupUser)
	api.HandleFunc("/config", s.handleConfig)
	api.HandleFunc("/sso/login", s.handleSSOLogin)
	api.HandleFunc("/sso/callback", s.handleSSOCallback)

	protected := func(path string, h http.HandlerFunc) {
		api.Handle(path, s.authMiddleware(h))
	}
	protected("/profile", s.handleProfile)

	protected("/measurements", s.handleMeasurements)
	protected("/measurements/recent", s.handleMeasurementsRecent)

	protected("/foods", s.handleFoods)
	protected("/ingestions", s.handleIngestions)
	protected("/ingestions/today", s.handleIngestionsToday)
	protected("/ingestions/undo-last", s.handleIngestionsUndoLast)

	protected("/nutrition/snapshot", s.handleNutritionSnapshot)
	protected("/nutrition/recent", s.handleNutritionRecent)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.gatherer != nil {
		root.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return withNoCache(s.loggingMiddleware(s.requestMetrics(root)))
}
