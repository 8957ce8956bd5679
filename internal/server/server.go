package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/config"
	"github.com/aikawa/riskcore/internal/metrics"
	"github.com/aikawa/riskcore/internal/modules/concentration"
	"github.com/aikawa/riskcore/internal/modules/correlation"
	"github.com/aikawa/riskcore/internal/modules/history"
	"github.com/aikawa/riskcore/internal/modules/scenario"
	"github.com/aikawa/riskcore/internal/modules/sensitivity"
)

// Handlers bundles the per-module HTTP handlers mounted by the server.
type Handlers struct {
	Concentration *concentration.Handler
	Sensitivity   *sensitivity.Handler
	Scenario      *scenario.Handler
	Correlation   *correlation.Handler
	History       *history.Handler
}

// Config holds server configuration
type Config struct {
	Port     int
	Log      zerolog.Logger
	Config   *config.Config
	Handlers Handlers
	Metrics  *metrics.Registry
	DevMode  bool
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	cfg      *config.Config
	handlers Handlers
	metrics  *metrics.Registry
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		cfg:      cfg.Config,
		handlers: cfg.Handlers,
		metrics:  cfg.Metrics,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/risk", func(r chi.Router) {
			r.Post("/concentration", s.handlers.Concentration.HandleAnalyze)
			r.Post("/sensitivity", s.handlers.Sensitivity.HandleScore)
			r.Get("/scenarios", s.handlers.Scenario.HandleListScenarios)
			r.Post("/scenario", s.handlers.Scenario.HandleStressTest)
			r.Post("/correlation", s.handlers.Correlation.HandleMatrix)
			r.Post("/factors", s.handlers.Correlation.HandleFactors)
			r.Post("/var", s.handlers.Correlation.HandleVaR)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/stress", s.handlers.History.HandleListStress)
			r.Get("/var", s.handlers.History.HandleListVaR)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
