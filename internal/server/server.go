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

	"github.com/edufolio/edufolio/internal/database"
	"github.com/edufolio/edufolio/internal/modules/allocation"
	"github.com/edufolio/edufolio/internal/modules/chat"
	"github.com/edufolio/edufolio/internal/modules/industries"
	"github.com/edufolio/edufolio/internal/modules/portfolio"
	"github.com/edufolio/edufolio/internal/modules/risk"
	"github.com/edufolio/edufolio/internal/modules/sessions"
	"github.com/edufolio/edufolio/internal/modules/universe"
)

// Config holds server configuration and the module handlers
type Config struct {
	Port    int
	DevMode bool
	Log     zerolog.Logger
	DB      *database.DB

	Sessions   *sessions.Store
	Risk       *risk.Handler
	Allocation *allocation.Handler
	Portfolio  *portfolio.Handler
	Universe   *universe.Handler
	Industries *industries.Handler
	Chat       *chat.Handler
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	db      *database.DB
	cfg     Config
	started time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		db:      cfg.DB,
		cfg:     cfg,
		started: time.Now(),
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
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		// Questionnaire and risk profiles
		r.Get("/questionnaire", s.cfg.Risk.HandleGetQuestionnaire)
		r.Route("/profile", func(r chi.Router) {
			r.Post("/", s.cfg.Risk.HandleCreateProfile)
			r.Get("/{sessionID}", s.cfg.Risk.HandleGetProfile)
			r.Post("/{sessionID}/disclaimer", s.cfg.Risk.HandleAcceptDisclaimer)
		})

		// Portfolios
		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/etf/{sessionID}", s.cfg.Allocation.HandleGetCorePortfolio)
			r.Get("/stocks/{sessionID}", s.cfg.Portfolio.HandleGetStockPortfolio)
		})

		// Market data
		r.Get("/screener", s.cfg.Universe.HandleScreener)
		r.Get("/stocks/{ticker}", s.cfg.Universe.HandleStockDetail)
		r.Get("/news", s.cfg.Universe.HandleNews)
		r.Get("/industries", s.cfg.Industries.HandleListIndustries)

		// Assistant
		r.Post("/chat", s.cfg.Chat.HandleChat)
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
