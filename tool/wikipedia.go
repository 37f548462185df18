package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Wikipedia answers animal questions from the MediaWiki API: one search
// request to find the best page, then one extract request for its intro.
type Wikipedia struct {
	BaseURL    string
	MaxExtract int
	client     *http.Client
}

type WikipediaOption func(*Wikipedia)

// WithWikipediaBaseURL sets the base URL for the MediaWiki API.
func WithWikipediaBaseURL(baseURL string) WikipediaOption {
	return func(w *Wikipedia) {
		w.BaseURL = baseURL
	}
}

// WithWikipediaMaxExtract sets the maximum extract length in runes.
func WithWikipediaMaxExtract(n int) WikipediaOption {
	return func(w *Wikipedia) {
		if n > 0 {
			w.MaxExtract = n
		}
	}
}

// WithWikipediaHTTPClient sets the HTTP client used for requests.
func WithWikipediaHTTPClient(client *http.Client) WikipediaOption {
	return func(w *Wikipedia) {
		w.client = client
	}
}

// NewWikipedia creates a new Wikipedia tool.
func NewWikipedia(opts ...WikipediaOption) *Wikipedia {
	w := &Wikipedia{
		BaseURL:    "https://en.wikipedia.org/w/api.php",
		MaxExtract: 800,
		client:     &http.Client{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the name of the tool.
func (w *Wikipedia) Name() string {
	return "get_animal_info"
}

// Description returns the description of the tool.
func (w *Wikipedia) Description() string {
	return "Get information about an animal from Wikipedia, including " +
		"descriptions, habitats, diets, behavior and conservation status. " +
		"Input should be the name of the animal, e.g. 'tiger' or 'blue whale'."
}

// Call looks the animal up on Wikipedia. Lookup failures are reported as
// plain text so the agent can relay them instead of aborting the turn.
func (w *Wikipedia) Call(ctx context.Context, input string) (string, error) {
	info, err := w.AnimalInfo(ctx, input)
	if err != nil {
		return fmt.Sprintf("Error retrieving information about %s: %v", input, err), nil
	}
	return info, nil
}

// AnimalInfo searches Wikipedia for the animal and returns a truncated
// intro extract of the best matching page.
func (w *Wikipedia) AnimalInfo(ctx context.Context, animal string) (string, error) {
	title, found, err := w.search(ctx, animal+" animal")
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("No information found for %s.", animal), nil
	}

	extract, err := w.extract(ctx, title)
	if err != nil {
		return "", err
	}
	if extract == "" {
		return fmt.Sprintf("Found page %s but couldn't extract any information.", title), nil
	}

	runes := []rune(extract)
	if len(runes) > w.MaxExtract {
		extract = string(runes[:w.MaxExtract]) + "..."
	}
	return fmt.Sprintf("Information about %s from Wikipedia:\n\n%s", title, extract), nil
}

func (w *Wikipedia) search(ctx context.Context, query string) (title string, found bool, err error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")

	var result struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &result); err != nil {
		return "", false, err
	}
	if len(result.Query.Search) == 0 {
		return "", false, nil
	}
	return result.Query.Search[0].Title, true, nil
}

func (w *Wikipedia) extract(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("explaintext", "true")
	params.Set("titles", title)
	params.Set("format", "json")

	var result struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &result); err != nil {
		return "", err
	}
	for _, page := range result.Query.Pages {
		return page.Extract, nil
	}
	return "", nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", w.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia api returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
