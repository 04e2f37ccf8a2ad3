package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/metrics"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/outreach"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/ports"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/signals"
)

// PipelineDeps wires all driven adapters into the intelligence pipeline.
// News and Notifier are optional.
type PipelineDeps struct {
	Fetcher  ports.PageFetcher
	News     ports.NewsSearcher
	Notifier ports.Notifier
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
	Now      func() time.Time
}

// Pipeline runs recon, signal detection, scoring and outreach for a domain.
// It holds no per-run state, so concurrent Run calls are independent.
type Pipeline struct {
	fetcher  ports.PageFetcher
	news     ports.NewsSearcher
	notifier ports.Notifier
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		fetcher:  deps.Fetcher,
		news:     deps.News,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		logger:   logger,
		now:      now,
	}
}

// Run executes every step once, in order, and always returns a report.
// Step failures degrade to defaults and are recorded in the trace.
func (p *Pipeline) Run(ctx context.Context, companyDomain string) domain.Report {
	trace := &domain.Trace{}

	recon := p.recon(ctx, companyDomain, trace)
	infra := p.detectInfrastructure(recon.Page, trace)
	growth := p.detectGrowth(recon.Page, trace)
	fiscal := p.checkFiscal(ctx, companyDomain, trace)
	synthesis := p.synthesize(infra, growth, fiscal.Signals, trace)
	draft := p.draftOutreach(ctx, companyDomain, synthesis, trace)

	p.metrics.ObserveRun(synthesis)

	return domain.Report{
		CompanyDossier: domain.CompanyDossier{
			Domain:            companyDomain,
			Title:             recon.Page.Title,
			Infrastructure:    infra,
			GrowthSignals:     growth,
			FiscalSignals:     fiscal.Signals,
			AnalysisTimestamp: p.now().Format(time.RFC3339),
		},
		StrategicAnalysis: domain.StrategicAnalysis{
			WhyNow:    synthesis.WhyNow,
			LeadScore: synthesis.Score,
		},
		Verdict: domain.Verdict{
			Recommendation: synthesis.Recommendation,
			Confidence:     confidence(synthesis.Score),
		},
		OutreachStrategy: draft,
		AgentTrace:       trace.Entries(),
	}
}

func (p *Pipeline) recon(ctx context.Context, target string, trace *domain.Trace) domain.PageResult {
	trace.Add("Recon Agent: Starting website scan")

	if p.fetcher == nil {
		trace.Add("Recon Agent: Failed (no fetcher configured)")
		p.metrics.ObserveFetch(domain.FetchTransport)
		return domain.PageResult{Page: domain.EmptyPage(), Failure: domain.FetchTransport}
	}

	page, err := p.fetcher.Fetch(ctx, target)
	result := domain.PageResult{Page: page, Failure: domain.ClassifyFetchError(err), Err: err}
	p.metrics.ObserveFetch(result.Failure)

	if !result.OK() {
		result.Page = domain.EmptyPage()
		trace.Add("Recon Agent: Failed (%s: %v)", result.Failure, err)
		p.logger.Warn("recon failed", "target", target, "failure", result.Failure, "error", err)
		return result
	}

	trace.Add("Recon Agent: Status %d", page.StatusCode)
	p.logger.Debug("recon done", "target", target, "status", page.StatusCode, "title", page.Title)
	return result
}

func (p *Pipeline) detectInfrastructure(page domain.RawPage, trace *domain.Trace) []string {
	infra := signals.DetectInfrastructure(page.Text)
	trace.Add("Infrastructure Agent: Found %q", infra)
	p.logger.Debug("infrastructure detected", "labels", infra)
	return infra
}

func (p *Pipeline) detectGrowth(page domain.RawPage, trace *domain.Trace) domain.GrowthSignals {
	growth := signals.CountGrowth(page.Text)
	trace.Add("Growth Agent: hiring=%d, scale=%d", growth.HiringMentions, growth.ScaleMentions)
	p.logger.Debug("growth counted", "hiring", growth.HiringMentions, "scale", growth.ScaleMentions)
	return growth
}

func (p *Pipeline) checkFiscal(ctx context.Context, companyDomain string, trace *domain.Trace) domain.FiscalResult {
	result := p.lookupFiscal(ctx, companyDomain)
	p.metrics.ObserveFiscal(result.Status)

	switch result.Status {
	case domain.FiscalUnconfigured:
		trace.Add("Fiscal Agent: news search not configured")
	case domain.FiscalFailed:
		trace.Add("Fiscal Agent: News fetch failed")
		p.logger.Warn("fiscal lookup failed", "domain", companyDomain, "error", result.Err)
	default:
		trace.Add("Fiscal Agent: funding=%t, layoffs=%t", result.Signals.Funding, result.Signals.Layoffs)
	}
	return result
}

func (p *Pipeline) lookupFiscal(ctx context.Context, companyDomain string) domain.FiscalResult {
	if p.news == nil {
		return domain.FiscalResult{Status: domain.FiscalUnconfigured}
	}

	news, err := p.news.Search(ctx, signals.FiscalQuery(companyDomain))
	if err != nil {
		return domain.FiscalResult{Status: domain.FiscalFailed, Err: err}
	}

	return domain.FiscalResult{
		Signals: signals.ClassifyHeadlines(news),
		Status:  domain.FiscalChecked,
	}
}

func (p *Pipeline) synthesize(infra []string, growth domain.GrowthSignals, fiscal domain.FiscalSignals, trace *domain.Trace) domain.SynthesisResult {
	result := signals.Synthesize(infra, growth, fiscal)
	trace.Add("Synthesis Agent: Score=%d, Verdict=%s", result.Score, result.Recommendation)
	return result
}

func (p *Pipeline) draftOutreach(ctx context.Context, companyDomain string, synthesis domain.SynthesisResult, trace *domain.Trace) *domain.OutreachDraft {
	if synthesis.Recommendation != domain.RecommendYes {
		trace.Add("Outreach Agent: Skipped")
		return nil
	}

	draft, err := outreach.Draft(companyDomain, synthesis)
	if err != nil {
		trace.Add("Outreach Agent: Failed (%v)", err)
		p.logger.Error("render outreach", "domain", companyDomain, "error", err)
		return nil
	}
	trace.Add("Outreach Agent: Generating %s-focused pitch", draft.TargetRole)

	if p.notifier != nil {
		err := p.notifier.PublishDraft(ctx, companyDomain, *draft)
		p.metrics.ObservePublish(err)
		if err != nil {
			trace.Add("Outreach Agent: Publish failed")
			p.logger.Warn("publish outreach", "domain", companyDomain, "error", err)
		} else {
			trace.Add("Outreach Agent: Draft published")
		}
	}

	return draft
}

func confidence(score int) float64 {
	return math.Round(float64(score)) / 100
}
