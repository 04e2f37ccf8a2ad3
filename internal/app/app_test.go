package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/config"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

func TestApplicationRun(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head>
		<body>Kubernetes on AWS. Hiring! Careers. Jobs. Join us.</body></html>`))
	}))
	defer server.Close()

	textfile := filepath.Join(t.TempDir(), "leadscanner.prom")
	cfg := config.Config{
		Fetcher: config.FetcherConfig{UserAgent: "Mozilla/5.0", Timeout: 5 * time.Second},
		Metrics: config.MetricsConfig{Textfile: textfile},
	}

	application := New(cfg, slog.New(slog.DiscardHandler))
	report, err := application.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if report.CompanyDossier.Title != "Acme" {
		t.Fatalf("unexpected title: %q", report.CompanyDossier.Title)
	}
	if report.StrategicAnalysis.LeadScore != 50 || report.Verdict.Recommendation != domain.RecommendYes {
		t.Fatalf("unexpected verdict: %d/%s", report.StrategicAnalysis.LeadScore, report.Verdict.Recommendation)
	}
	if report.CompanyDossier.FiscalSignals != (domain.FiscalSignals{}) {
		t.Fatalf("fiscal must default to false/false: %+v", report.CompanyDossier.FiscalSignals)
	}

	raw, err := os.ReadFile(textfile)
	if err != nil {
		t.Fatalf("read metrics textfile: %v", err)
	}
	if !strings.Contains(string(raw), `leadscanner_fetch_total{outcome="ok"} 1`) {
		t.Fatalf("fetch counter missing:\n%s", raw)
	}
	if !strings.Contains(string(raw), `leadscanner_fiscal_lookups_total{status="unconfigured"} 1`) {
		t.Fatalf("fiscal counter missing:\n%s", raw)
	}
}

func TestApplicationRunUnreachable(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Fetcher: config.FetcherConfig{Timeout: time.Second}}
	report, err := New(cfg, slog.New(slog.DiscardHandler)).Run(context.Background(), "http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Verdict.Recommendation != domain.RecommendNo || report.OutreachStrategy != nil {
		t.Fatalf("expected NO without outreach, got %+v", report.Verdict)
	}
}
