package signals

import (
	"strings"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

const (
	weightInfra          = 25
	weightHiringSurge    = 25
	weightHiringPresent  = 15
	weightScale          = 15
	weightFunding        = 20
	weightLayoffs        = 10
	weightInferredSaaS   = 10
	hiringSurgeThreshold = 3
	scaleThreshold       = 2

	maxScore     = 100
	yesThreshold = 50

	fallbackWhyNow = "limited timing signals"
)

// Synthesize combines infra, growth and fiscal signals into a lead score,
// a YES/NO recommendation and a short why-now rationale.
func Synthesize(infra []string, growth domain.GrowthSignals, fiscal domain.FiscalSignals) domain.SynthesisResult {
	score := 0

	if len(infra) > 0 {
		score += weightInfra
	}

	switch {
	case growth.HiringMentions > hiringSurgeThreshold:
		score += weightHiringSurge
	case growth.HiringMentions > 0:
		score += weightHiringPresent
	}

	if growth.ScaleMentions > scaleThreshold {
		score += weightScale
	}

	if fiscal.Funding {
		score += weightFunding
	}
	if fiscal.Layoffs {
		score += weightLayoffs
	}

	// Stacks with the generic infra bonus above.
	if HasLabel(infra, domain.LabelInferredSaaS) {
		score += weightInferredSaaS
	}

	score = clamp(score, 0, maxScore)

	recommendation := domain.RecommendNo
	if score >= yesThreshold {
		recommendation = domain.RecommendYes
	}

	return domain.SynthesisResult{
		Score:          score,
		Recommendation: recommendation,
		WhyNow:         whyNow(infra, growth, fiscal),
	}
}

func whyNow(infra []string, growth domain.GrowthSignals, fiscal domain.FiscalSignals) string {
	var reasons []string
	if growth.HiringMentions > 0 {
		reasons = append(reasons, "active hiring surge")
	}
	if len(infra) > 0 {
		reasons = append(reasons, "cloud-heavy architecture")
	}
	if fiscal.Funding {
		reasons = append(reasons, "recent funding event")
	}
	if len(reasons) == 0 {
		return fallbackWhyNow
	}
	return strings.Join(reasons, ", ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
