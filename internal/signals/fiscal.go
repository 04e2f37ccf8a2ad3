package signals

import (
	"strings"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

// FiscalQuery builds the free-text news query for a company domain.
func FiscalQuery(companyDomain string) string {
	return companyDomain + " funding OR layoffs OR cost cutting"
}

// ClassifyHeadlines flags funding and layoff mentions in news titles,
// case-insensitively.
func ClassifyHeadlines(news []domain.NewsResult) domain.FiscalSignals {
	var out domain.FiscalSignals
	for _, n := range news {
		title := strings.ToLower(n.Title)
		if strings.Contains(title, "funding") {
			out.Funding = true
		}
		if strings.Contains(title, "layoff") {
			out.Layoffs = true
		}
	}
	return out
}
