package outreach

import (
	"strings"
	"testing"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

func TestDraftSkipsNo(t *testing.T) {
	t.Parallel()

	draft, err := Draft("acme.io", domain.SynthesisResult{Score: 49, Recommendation: domain.RecommendNo})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if draft != nil {
		t.Fatalf("expected no draft, got %+v", draft)
	}
}

func TestDraftRendersTemplate(t *testing.T) {
	t.Parallel()

	draft, err := Draft("acme.io", domain.SynthesisResult{
		Score:          85,
		Recommendation: domain.RecommendYes,
		WhyNow:         "active hiring surge, recent funding event",
	})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if draft == nil {
		t.Fatal("expected a draft")
	}

	if draft.TargetRole != "CTO" {
		t.Fatalf("unexpected role: %s", draft.TargetRole)
	}
	if draft.Angle != "Infrastructure Scale Optimization" {
		t.Fatalf("unexpected angle: %s", draft.Angle)
	}
	if !strings.HasPrefix(draft.DraftEmail, "Subject: Supporting acme.io's Infrastructure at Scale") {
		t.Fatalf("unexpected subject line: %q", draft.DraftEmail)
	}
	if !strings.Contains(draft.DraftEmail, "We noticed signs of active hiring surge, recent funding event at acme.io.") {
		t.Fatalf("why-now not substituted: %q", draft.DraftEmail)
	}
	if !strings.HasSuffix(draft.DraftEmail, "DataVex Team") {
		t.Fatalf("draft not trimmed: %q", draft.DraftEmail)
	}
}
