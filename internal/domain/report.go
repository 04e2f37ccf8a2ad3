package domain

// Report is the final structured result returned to callers.
type Report struct {
	CompanyDossier    CompanyDossier    `json:"company_dossier"`
	StrategicAnalysis StrategicAnalysis `json:"strategic_analysis"`
	Verdict           Verdict           `json:"verdict"`
	OutreachStrategy  *OutreachDraft    `json:"outreach_strategy"`
	AgentTrace        []string          `json:"agent_trace"`
}

// CompanyDossier is the fetched-and-derived profile of the target domain.
type CompanyDossier struct {
	Domain            string        `json:"domain"`
	Title             string        `json:"title"`
	Infrastructure    []string      `json:"infrastructure"`
	GrowthSignals     GrowthSignals `json:"growth_signals"`
	FiscalSignals     FiscalSignals `json:"fiscal_signals"`
	AnalysisTimestamp string        `json:"analysis_timestamp"`
}

type StrategicAnalysis struct {
	WhyNow    string `json:"why_now"`
	LeadScore int    `json:"lead_score"`
}

type Verdict struct {
	Recommendation Recommendation `json:"recommendation"`
	Confidence     float64        `json:"confidence"`
}
