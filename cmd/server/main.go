package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edufolio/edufolio/internal/clients/yahoo"
	"github.com/edufolio/edufolio/internal/config"
	"github.com/edufolio/edufolio/internal/database"
	"github.com/edufolio/edufolio/internal/events"
	"github.com/edufolio/edufolio/internal/modules/allocation"
	"github.com/edufolio/edufolio/internal/modules/charts"
	"github.com/edufolio/edufolio/internal/modules/chat"
	"github.com/edufolio/edufolio/internal/modules/industries"
	"github.com/edufolio/edufolio/internal/modules/portfolio"
	"github.com/edufolio/edufolio/internal/modules/risk"
	"github.com/edufolio/edufolio/internal/modules/sessions"
	"github.com/edufolio/edufolio/internal/modules/universe"
	"github.com/edufolio/edufolio/internal/scheduler"
	"github.com/edufolio/edufolio/internal/server"
	"github.com/edufolio/edufolio/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet, so build a default one for the error
		bootLog := logger.New(logger.Config{Level: "info", Pretty: true})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Edufolio")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Shared infrastructure
	eventMgr := events.NewManager(log)
	yahooClient := yahoo.NewClient(cfg.QuoteRatePerSec, log)
	sessionStore := sessions.NewStore(log)

	// Market data
	quoteCache := universe.NewQuoteCache(db, log)
	chartSvc := charts.NewService(log)
	universeSvc := universe.NewService(
		quoteCache,
		yahooClient,
		chartSvc,
		eventMgr,
		universe.Config{
			LiveData: cfg.LiveData,
			QuoteTTL: time.Duration(cfg.QuoteTTLMinutes) * time.Minute,
		},
		log,
	)

	// Portfolio construction
	allocationSvc := allocation.NewService(log)
	builder := portfolio.NewBuilder(log)
	riskEngine := risk.NewEngine(log)

	// Handlers
	riskHandler := risk.NewHandler(riskEngine, allocationSvc, builder, universeSvc, sessionStore, eventMgr, log)
	allocationHandler := allocation.NewHandler(allocationSvc, sessionStore, log)
	portfolioHandler := portfolio.NewHandler(sessionStore, log)
	universeHandler := universe.NewHandler(universeSvc, log)
	industriesHandler := industries.NewHandler(log)
	chatHandler := chat.NewHandler(chat.NewService(universeSvc, log), sessionStore, log)

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	// Register background jobs
	if cfg.LiveData {
		if err := sched.AddJob(cfg.RefreshSchedule, universe.NewRefreshJob(universeSvc)); err != nil {
			log.Fatal().Err(err).Msg("Failed to register quote refresh job")
		}
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:       cfg.Port,
		DevMode:    cfg.DevMode,
		Log:        log,
		DB:         db,
		Sessions:   sessionStore,
		Risk:       riskHandler,
		Allocation: allocationHandler,
		Portfolio:  portfolioHandler,
		Universe:   universeHandler,
		Industries: industriesHandler,
		Chat:       chatHandler,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Bool("live_data", cfg.LiveData).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
