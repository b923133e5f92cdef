package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/availlac/releve/internal/domain/categorize"
	"github.com/availlac/releve/internal/domain/report"
	reporthandler "github.com/availlac/releve/internal/domain/report/handler"
	"github.com/availlac/releve/internal/server"
	"github.com/availlac/releve/pkg/config"
	"github.com/availlac/releve/pkg/cron"
	"github.com/availlac/releve/pkg/storage"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Engine        *categorize.Engine
	ReportService *report.Service
	ReportHandler *reporthandler.Handler
	Scheduler     *cron.Scheduler
	API           *server.WebAPI
}

// NewDependencies wires the application together.
func NewDependencies() (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	engine := categorize.NewEngine()
	svc := report.NewService(logger, engine, cfg.Analysis.CacheTTL, cfg.Analysis.SuggestLimit)
	if cfg.Analysis.ArchivePath != "" {
		archive, err := storage.NewLocalArchive(cfg.Analysis.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open archive: %w", err)
		}
		svc.WithArchive(archive)
	}
	h := reporthandler.NewHandler(svc, logger, cfg.Server.MaxUploadBytes)
	scheduler := cron.NewScheduler(svc.Cache(), cfg.Analysis.CacheSweepSchedule, logger)
	api := server.NewWebAPI(cfg, h, logger)

	return &Dependencies{
		Config:        cfg,
		Logger:        logger,
		Engine:        engine,
		ReportService: svc,
		ReportHandler: h,
		Scheduler:     scheduler,
		API:           api,
	}, nil
}
