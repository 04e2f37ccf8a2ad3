package outreach

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

const (
	TargetRole = "CTO"
	Angle      = "Infrastructure Scale Optimization"
)

var emailTemplate = template.Must(template.New("pitch").Parse(`
Subject: Supporting {{.Domain}}'s Infrastructure at Scale

Hi CTO,

We noticed signs of {{.WhyNow}} at {{.Domain}}.

As engineering teams scale, cloud costs and data complexity grow rapidly.
DataVex helps teams optimize infrastructure efficiency, reduce cloud waste,
and improve data pipeline reliability without slowing innovation.

Would you be open to a 20-minute discussion this week?

Best,
DataVex Team
`))

// Draft renders the CTO pitch for a YES verdict. It returns nil when the
// recommendation is NO.
func Draft(companyDomain string, synthesis domain.SynthesisResult) (*domain.OutreachDraft, error) {
	if synthesis.Recommendation != domain.RecommendYes {
		return nil, nil
	}

	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, struct {
		Domain string
		WhyNow string
	}{Domain: companyDomain, WhyNow: synthesis.WhyNow})
	if err != nil {
		return nil, fmt.Errorf("render pitch: %w", err)
	}

	return &domain.OutreachDraft{
		TargetRole: TargetRole,
		Angle:      Angle,
		DraftEmail: strings.TrimSpace(buf.String()),
	}, nil
}
