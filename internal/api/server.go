// Package api provides the HTTP API server and handlers for the DayGrid application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/daygridapp/daygrid-server/internal/config"
	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/ratelimit"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg                *config.Config
	authService        *service.AuthService
	sessionService     *service.SessionService
	accountService     *service.AccountService
	trackingService    *service.TrackingService
	subcategoryService *service.SubcategoryService
	goalService        *service.GoalService
	analyticsService   *service.AnalyticsService
	loginLimiter       *ratelimit.KeyedRateLimiter
	router             *chi.Mux
	logger             *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	sessionService *service.SessionService,
	accountService *service.AccountService,
	trackingService *service.TrackingService,
	subcategoryService *service.SubcategoryService,
	goalService *service.GoalService,
	analyticsService *service.AnalyticsService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:                cfg,
		authService:        authService,
		sessionService:     sessionService,
		accountService:     accountService,
		trackingService:    trackingService,
		subcategoryService: subcategoryService,
		goalService:        goalService,
		analyticsService:   analyticsService,
		// 5 attempts per minute per client address, small burst.
		loginLimiter: ratelimit.New(5.0/60.0, 5),
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-owned resources.
func (s *Server) Close() {
	s.loginLimiter.Stop()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints (public, login rate-limited per client address).
		r.Route("/auth", func(r chi.Router) {
			r.Get("/setup", s.handleSetupStatus)
			r.Post("/setup", s.handleSetup)
			r.With(s.rateLimitByIP).Post("/login", s.handleLogin)
			r.Post("/refresh", s.handleRefresh)
			r.Post("/logout", s.handleLogout)
		})

		// Current user.
		r.Route("/users/me", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetCurrentUser)
			r.Patch("/", s.handleUpdateProfile)
			r.Post("/onboarding", s.handleCompleteOnboarding)
			r.Get("/sessions", s.handleListSessions)
			r.Delete("/sessions", s.handleLogoutEverywhere)
		})

		// The daily grid.
		r.Route("/days", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetDayRange)
			r.Get("/{date}", s.handleGetDay)
			r.Post("/assign", s.handleAssignCells)
			r.Post("/clear", s.handleClearCells)
		})

		// Legacy flat task view.
		r.With(s.requireAuth).Get("/tasks", s.handleGetTasks)

		// Subcategories.
		r.Route("/subcategories", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListSubcategories)
			r.Post("/", s.handleCreateSubcategory)
			r.Get("/{id}", s.handleGetSubcategory)
			r.Patch("/{id}", s.handleUpdateSubcategory)
			r.Delete("/{id}", s.handleDeleteSubcategory)
		})

		// Goals.
		r.Route("/goals", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListGoals)
			r.Post("/", s.handleCreateGoal)
			r.Get("/progress", s.handleGoalProgress)
			r.Get("/{id}", s.handleGetGoal)
			r.Patch("/{id}", s.handleUpdateGoal)
			r.Delete("/{id}", s.handleDeleteGoal)
		})

		// Analytics.
		r.Route("/analytics", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/summary", s.handleAnalyticsSummary)
			r.Get("/trends", s.handleAnalyticsTrends)
			r.Get("/wellbeing", s.handleAnalyticsWellBeing)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
		"name":   s.cfg.Server.Name,
	}, s.logger)
}
