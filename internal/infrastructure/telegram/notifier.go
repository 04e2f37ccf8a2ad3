package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/ports"
)

const defaultAPIBase = "https://api.telegram.org"

// Notifier sends drafted pitches to a Telegram chat via bot API.
type Notifier struct {
	apiBase  string
	botToken string
	chatID   string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		apiBase:  defaultAPIBase,
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishDraft posts the drafted email as a plain-text message.
func (n *Notifier) PublishDraft(ctx context.Context, companyDomain string, draft domain.OutreachDraft) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimSuffix(n.apiBase, "/"), n.botToken)
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", formatDraft(companyDomain, draft))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

func formatDraft(companyDomain string, draft domain.OutreachDraft) string {
	return fmt.Sprintf("New lead: %s\nTarget: %s\nAngle: %s\n\n%s",
		companyDomain,
		draft.TargetRole,
		draft.Angle,
		draft.DraftEmail)
}
