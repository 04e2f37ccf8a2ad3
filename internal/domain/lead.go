package domain

// Infrastructure labels emitted by the infra detector, in evaluation order.
const (
	LabelExplicitCloud = "Explicit Cloud Stack"
	LabelInferredSaaS  = "Inferred Cloud-Heavy SaaS"
)

// UnknownTitle is used when a page has no usable <title>.
const UnknownTitle = "Unknown"

// RawPage is the fetched snapshot of the target site.
type RawPage struct {
	StatusCode int
	Title      string
	Text       string
	Headers    string
}

// EmptyPage returns the sentinel page used when a fetch fails.
func EmptyPage() RawPage {
	return RawPage{StatusCode: 0, Title: UnknownTitle}
}

// FetchFailure classifies why a page could not be retrieved.
type FetchFailure string

const (
	FetchOK         FetchFailure = "ok"
	FetchInvalidURL FetchFailure = "invalid_url"
	FetchTransport  FetchFailure = "transport"
	FetchParse      FetchFailure = "parse"
)

// PageResult is the outcome of the recon step. Page is always usable:
// on failure it holds EmptyPage and Failure/Err describe the cause.
type PageResult struct {
	Page    RawPage
	Failure FetchFailure
	Err     error
}

// OK reports whether the page was fetched and parsed.
func (r PageResult) OK() bool {
	return r.Failure == FetchOK
}

// GrowthSignals holds raw hiring and scale pattern counts.
type GrowthSignals struct {
	HiringMentions int `json:"hiring_mentions"`
	ScaleMentions  int `json:"scale_mentions"`
}

// FiscalSignals flags funding or layoff news about the company.
type FiscalSignals struct {
	Funding bool `json:"funding"`
	Layoffs bool `json:"layoffs"`
}

// FiscalStatus describes how the fiscal signals were obtained.
type FiscalStatus string

const (
	FiscalChecked      FiscalStatus = "checked"
	FiscalUnconfigured FiscalStatus = "unconfigured"
	FiscalFailed       FiscalStatus = "failed"
)

// FiscalResult is the outcome of the fiscal step. Signals are false/false
// unless Status is FiscalChecked.
type FiscalResult struct {
	Signals FiscalSignals
	Status  FiscalStatus
	Err     error
}

// NewsResult is a single headline returned by the news search backend.
type NewsResult struct {
	Title string
}

// Recommendation is the binary outreach verdict.
type Recommendation string

const (
	RecommendYes Recommendation = "YES"
	RecommendNo  Recommendation = "NO"
)

// SynthesisResult is the combined lead score and its rationale.
type SynthesisResult struct {
	Score          int
	Recommendation Recommendation
	WhyNow         string
}

// OutreachDraft is the templated pitch produced for YES verdicts.
type OutreachDraft struct {
	TargetRole string `json:"target_role"`
	Angle      string `json:"angle"`
	DraftEmail string `json:"draft_email"`
}
