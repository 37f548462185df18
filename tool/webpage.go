package tool

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WebPage fetches a URL and reduces it to readable text: the page title
// followed by its paragraph text, truncated to a budget the model can
// digest in one tool result.
type WebPage struct {
	MaxChars int
	client   *http.Client
}

type WebPageOption func(*WebPage)

// WithWebPageMaxChars sets the maximum length of the extracted text.
func WithWebPageMaxChars(n int) WebPageOption {
	return func(w *WebPage) {
		if n > 0 {
			w.MaxChars = n
		}
	}
}

// WithWebPageHTTPClient sets the HTTP client used for requests.
func WithWebPageHTTPClient(client *http.Client) WebPageOption {
	return func(w *WebPage) {
		w.client = client
	}
}

// NewWebPage creates a new WebPage tool.
func NewWebPage(opts ...WebPageOption) *WebPage {
	w := &WebPage{
		MaxChars: 4000,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the name of the tool.
func (w *WebPage) Name() string {
	return "read_webpage"
}

// Description returns the description of the tool.
func (w *WebPage) Description() string {
	return "Fetch a web page and return its readable text. " +
		"Input should be a full URL starting with http:// or https://."
}

// Call fetches the page at the URL in the input.
func (w *WebPage) Call(ctx context.Context, input string) (string, error) {
	pageURL := strings.TrimSpace(input)
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return "", fmt.Errorf("not a URL: %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	var sb strings.Builder
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}

	doc.Find("script,style,noscript").Remove()
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if text == "" {
		return "", fmt.Errorf("no readable text found at %s", pageURL)
	}
	runes := []rune(text)
	if len(runes) > w.MaxChars {
		text = string(runes[:w.MaxChars]) + "..."
	}
	return text, nil
}
