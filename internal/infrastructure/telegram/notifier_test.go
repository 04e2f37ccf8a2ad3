package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

type capturedRequest struct {
	path string
	form url.Values
}

func TestPublishDraft(t *testing.T) {
	t.Parallel()

	requests := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		requests <- capturedRequest{path: r.URL.Path, form: r.PostForm}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	n := NewNotifier("abc", "42")
	n.apiBase = server.URL
	n.client = server.Client()

	err := n.PublishDraft(context.Background(), "acme.io", domain.OutreachDraft{
		TargetRole: "CTO",
		Angle:      "Infrastructure Scale Optimization",
		DraftEmail: "Subject: hello",
	})
	if err != nil {
		t.Fatalf("PublishDraft returned error: %v", err)
	}

	got := <-requests
	if got.path != "/botabc/sendMessage" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	if got.form.Get("chat_id") != "42" {
		t.Fatalf("unexpected chat id: %s", got.form.Get("chat_id"))
	}
	text := got.form.Get("text")
	if !strings.HasPrefix(text, "New lead: acme.io") || !strings.HasSuffix(text, "Subject: hello") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestPublishDraftErrors(t *testing.T) {
	t.Parallel()

	if err := NewNotifier("", "").PublishDraft(context.Background(), "acme.io", domain.OutreachDraft{}); err == nil {
		t.Fatal("expected misconfiguration error")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	n := NewNotifier("abc", "42")
	n.apiBase = server.URL
	n.client = server.Client()
	if err := n.PublishDraft(context.Background(), "acme.io", domain.OutreachDraft{}); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
