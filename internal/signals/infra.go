package signals

import (
	"strings"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

var (
	directStackKeywords = []string{"aws", "gcp", "azure", "kubernetes", "docker"}
	saasKeywords        = []string{"api", "platform", "payment", "testing", "developer", "cloud"}
)

// DetectInfrastructure returns the infra labels whose keyword sets appear in
// the lower-cased page text. Matching is plain substring containment, so
// "apis" and "capital" both count as "api". The result is never nil.
func DetectInfrastructure(text string) []string {
	labels := make([]string, 0, 2)
	if containsAny(text, directStackKeywords) {
		labels = append(labels, domain.LabelExplicitCloud)
	}
	if containsAny(text, saasKeywords) {
		labels = append(labels, domain.LabelInferredSaaS)
	}
	return labels
}

// HasLabel reports whether label is present in infra.
func HasLabel(infra []string, label string) bool {
	for _, l := range infra {
		if l == label {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
