package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/config"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/infrastructure/news"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/infrastructure/telegram"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/infrastructure/web"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/logging"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/metrics"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/ports"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/usecase"
)

// Application wires configs to the intelligence pipeline.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := prometheus.NewRegistry()

	fetcher := web.NewFetcher(&http.Client{Timeout: cfg.Fetcher.Timeout}, cfg.Fetcher.UserAgent)

	var searcher ports.NewsSearcher
	if cfg.News.Enabled() {
		searcher = news.NewSerpAPIClient(cfg.News)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.Enabled() {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:  fetcher,
		News:     searcher,
		Notifier: notifier,
		Metrics:  metrics.New(registry),
		Logger:   baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		registry: registry,
		pipeline: pipeline,
	}
}

// Run analyses a single domain. The report is always produced; the error
// only reports a failed metrics flush.
func (a *Application) Run(ctx context.Context, companyDomain string) (domain.Report, error) {
	report := a.pipeline.Run(ctx, companyDomain)

	a.logger.Info("analysis complete",
		"domain", companyDomain,
		"score", report.StrategicAnalysis.LeadScore,
		"recommendation", report.Verdict.Recommendation)

	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path, a.registry); err != nil {
			return report, fmt.Errorf("write metrics textfile: %w", err)
		}
	}

	return report, nil
}
