package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

const namespace = "leadscanner"

// Recorder exposes per-run counters. A nil *Recorder is a no-op.
type Recorder struct {
	runs      *prometheus.CounterVec
	fetches   *prometheus.CounterVec
	fiscal    *prometheus.CounterVec
	published *prometheus.CounterVec
	score     prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed pipeline runs by recommendation.",
			},
			[]string{"recommendation"},
		),
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Landing page fetches by outcome.",
			},
			[]string{"outcome"},
		),
		fiscal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fiscal_lookups_total",
				Help:      "News search lookups by status.",
			},
			[]string{"status"},
		),
		published: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outreach_published_total",
				Help:      "Outreach drafts pushed to the notifier by outcome.",
			},
			[]string{"outcome"},
		),
		score: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lead_score",
				Help:      "Distribution of synthesized lead scores.",
				Buckets:   []float64{0, 25, 50, 75, 100},
			},
		),
	}
}

func (r *Recorder) ObserveFetch(failure domain.FetchFailure) {
	if r == nil {
		return
	}
	r.fetches.WithLabelValues(string(failure)).Inc()
}

func (r *Recorder) ObserveFiscal(status domain.FiscalStatus) {
	if r == nil {
		return
	}
	r.fiscal.WithLabelValues(string(status)).Inc()
}

func (r *Recorder) ObservePublish(err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	r.published.WithLabelValues(outcome).Inc()
}

// ObserveRun records the final verdict of a run.
func (r *Recorder) ObserveRun(result domain.SynthesisResult) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(string(result.Recommendation)).Inc()
	r.score.Observe(float64(result.Score))
}

// WriteTextfile dumps every metric gathered by g into path using the
// node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
