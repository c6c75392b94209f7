package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/karimbakr/docufield/internal/classify"
	"github.com/karimbakr/docufield/internal/config"
	"github.com/karimbakr/docufield/internal/core/ports"
	"github.com/karimbakr/docufield/internal/core/usecase"
	"github.com/karimbakr/docufield/internal/export/excel"
	"github.com/karimbakr/docufield/internal/extract"
	"github.com/karimbakr/docufield/internal/infrastructure/ocr/remoteocr"
	"github.com/karimbakr/docufield/internal/infrastructure/pages"
	"github.com/karimbakr/docufield/internal/infrastructure/quality"
	"github.com/karimbakr/docufield/internal/infrastructure/queue/nats"
	"github.com/karimbakr/docufield/internal/infrastructure/repository/postgres"
	"github.com/karimbakr/docufield/internal/infrastructure/resilience"
	"github.com/karimbakr/docufield/internal/infrastructure/storage/localfs"
	"github.com/karimbakr/docufield/internal/ruleset"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue

	IngestUC   ports.DocumentIngestor
	ProcessUC  ports.DocumentProcessor
	ReadUC     ports.DocumentReader
	ClassifyUC ports.ClassifierService
	Exporter   *excel.Exporter

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	catalog, err := ruleset.Load(ruleset.Options{
		TemplatesPath: cfg.RulesetTemplatesPath,
		RulesPath:     cfg.RulesetRulesPath,
	})
	if err != nil {
		return nil, fmt.Errorf("load ruleset: %w", err)
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	fieldRepo := postgres.NewFieldRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig()),
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	ocrExecutor := resilience.NewExecutor(remoteocr.ExecutorConfig())
	ocrClient := remoteocr.New(cfg.OCRBaseURL, time.Duration(cfg.OCRTimeoutSeconds)*time.Second, ocrExecutor)
	pageReader := pages.NewReader(storage, ocrClient)

	qualityChecker := quality.NewChecker(quality.Config{
		MinWidth:      cfg.QualityMinWidth,
		MinHeight:     cfg.QualityMinHeight,
		MinBrightness: cfg.QualityMinBrightness,
		MaxBrightness: cfg.QualityMaxBrightness,
		MinContrast:   cfg.QualityMinContrast,
	})

	classifier := classify.New(catalog)
	extractor := extract.NewRegistry(catalog)

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue, qualityChecker, catalog)
	processUC := usecase.NewProcessDocumentUseCase(repo, fieldRepo, pageReader, classifier, extractor, catalog, cfg.MinClassifyConfidence)
	readUC := usecase.NewReadDocumentUseCase(repo, fieldRepo)
	classifyUC := usecase.NewClassifyTextUseCase(classifier)

	return &App{
		Config: cfg,
		Queue:  queue,

		IngestUC:   ingestUC,
		ProcessUC:  processUC,
		ReadUC:     readUC,
		ClassifyUC: classifyUC,
		Exporter:   excel.NewExporter(),

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
