package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/ports"
)

const (
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 10 * time.Second
)

// Fetcher downloads a landing page and reduces it to a RawPage.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

var _ ports.PageFetcher = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; a nil client gets a 10s timeout and an
// empty user agent falls back to Mozilla/5.0.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch issues a single GET against target and extracts title, visible text
// and headers. Non-2xx responses are still parsed; only transport and parse
// errors fail.
func (f *Fetcher) Fetch(ctx context.Context, target string) (domain.RawPage, error) {
	pageURL, err := NormalizeURL(target)
	if err != nil {
		return domain.EmptyPage(), err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return domain.EmptyPage(), fmt.Errorf("%w: build request: %w", domain.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.EmptyPage(), fmt.Errorf("%w: request page: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.EmptyPage(), fmt.Errorf("%w: read body: %w", domain.ErrTransport, err)
	}

	utf8Body, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return domain.EmptyPage(), fmt.Errorf("%w: decode charset: %w", domain.ErrParse, err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return domain.EmptyPage(), fmt.Errorf("%w: parse document: %w", domain.ErrParse, err)
	}

	return domain.RawPage{
		StatusCode: resp.StatusCode,
		Title:      pageTitle(doc),
		Text:       visibleText(doc),
		Headers:    serializeHeaders(resp.Header),
	}, nil
}

// NormalizeURL trims target and prepends https:// when no http(s) scheme is
// present.
func NormalizeURL(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("%w: empty target", domain.ErrInvalidURL)
	}

	lower := strings.ToLower(target)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		target = "https://" + target
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host in %s", domain.ErrInvalidURL, target)
	}
	return parsed.String(), nil
}

func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return domain.UnknownTitle
	}
	return title
}

func visibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, template").Remove()
	return strings.ToLower(doc.Text())
}

func serializeHeaders(h http.Header) string {
	if len(h) == 0 {
		return ""
	}

	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(h[name], ", ")))
	}
	return strings.ToLower(strings.Join(lines, "\n"))
}
