package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aikawa/riskcore/internal/config"
	"github.com/aikawa/riskcore/internal/database"
	"github.com/aikawa/riskcore/internal/metrics"
	"github.com/aikawa/riskcore/internal/modules/concentration"
	"github.com/aikawa/riskcore/internal/modules/correlation"
	"github.com/aikawa/riskcore/internal/modules/history"
	"github.com/aikawa/riskcore/internal/modules/scenario"
	"github.com/aikawa/riskcore/internal/modules/sensitivity"
	"github.com/aikawa/riskcore/internal/scheduler"
	"github.com/aikawa/riskcore/internal/server"
	"github.com/aikawa/riskcore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting riskcore")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := history.InitSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize history schema")
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.ScenarioFile).Msg("Failed to load scenario catalog")
	}
	log.Info().Int("scenarios", catalog.Len()).Msg("Scenario catalog loaded")

	historyRepo := history.NewRepository(db.Conn(), log)

	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	cleanup := history.NewCleanupJob(historyRepo, cfg.HistoryRetentionDays, log)
	if err := sched.AddJob("@daily", cleanup); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cleanup job")
	}
	if err := sched.RunNow(cleanup); err != nil {
		log.Warn().Err(err).Msg("Initial history cleanup failed")
	}

	m := metrics.New()
	engine := scenario.NewEngine(catalog, cfg.ReportingCurrency, log)

	srv := server.New(server.Config{
		Port:   cfg.Port,
		Log:    log,
		Config: cfg,
		Handlers: server.Handlers{
			Concentration: concentration.NewHandler(concentration.NewAnalyzer(), m, log),
			Sensitivity:   sensitivity.NewHandler(sensitivity.NewScorer(), m, log),
			Scenario:      scenario.NewHandler(engine, stressArchiver{historyRepo}, m, log),
			Correlation:   correlation.NewHandler(varArchiver{historyRepo}, m, log),
			History:       history.NewHandler(historyRepo, log),
		},
		Metrics: m,
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func loadCatalog(cfg *config.Config) (*scenario.Catalog, error) {
	if cfg.ScenarioFile != "" {
		return scenario.LoadCatalog(cfg.ScenarioFile)
	}
	return scenario.DefaultCatalog(), nil
}

// stressArchiver adapts the history repository to the scenario handler's
// archiver interface.
type stressArchiver struct {
	repo *history.Repository
}

func (a stressArchiver) SaveStressResult(result scenario.PortfolioResult) error {
	_, err := a.repo.SaveStressResult(result)
	return err
}

// varArchiver adapts the history repository to the correlation handler's
// archiver interface.
type varArchiver struct {
	repo *history.Repository
}

func (a varArchiver) SaveVaRResult(result correlation.VaRResult) error {
	_, err := a.repo.SaveVaRResult(result)
	return err
}
