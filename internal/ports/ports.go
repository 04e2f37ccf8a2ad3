package ports

import (
	"context"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

// PageFetcher retrieves and parses the landing page of a target.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (domain.RawPage, error)
}

// NewsSearcher runs a free-text news query and returns the headlines.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]domain.NewsResult, error)
}

// Notifier publishes a drafted pitch to an outbound channel (Telegram, etc.).
type Notifier interface {
	PublishDraft(ctx context.Context, companyDomain string, draft domain.OutreachDraft) error
}
