package provider

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

const duckDuckGoEndpoint = "https://lite.duckduckgo.com/lite/"

// ddgRateLimit enforces one query per second across all DuckDuckGo
// instances; the lite endpoint bans aggressive clients.
var ddgRateLimit struct {
	mu   sync.Mutex
	last time.Time
}

// DuckDuckGo scrapes the stable lite HTML page of DuckDuckGo. It needs no
// API key, which keeps the default deployment free of credentials.
type DuckDuckGo struct {
	client *http.Client
}

const searchMaxAttempts = 3

// NewDuckDuckGo creates a searcher with a bounded per-call timeout.
func NewDuckDuckGo(timeout time.Duration) *DuckDuckGo {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &DuckDuckGo{client: &http.Client{Timeout: timeout}}
}

var (
	resultLinkPattern    = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	resultLinkAltPattern = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)
	resultSnippetPattern = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]+(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)
	tagPattern           = regexp.MustCompile(`<[^>]+>`)
)

// Search posts the query to the lite endpoint and parses the result rows.
// 429 responses are retried with doubling backoff up to searchMaxAttempts.
func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}
	if limit <= 0 {
		limit = 10
	}

	ddgRateLimit.mu.Lock()
	if wait := time.Until(ddgRateLimit.last.Add(time.Second)); wait > 0 {
		ddgRateLimit.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		ddgRateLimit.mu.Lock()
	}
	ddgRateLimit.last = time.Now()
	ddgRateLimit.mu.Unlock()

	formData := url.Values{}
	formData.Set("q", query)

	var resp *http.Response
	delay := time.Second
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, duckDuckGoEndpoint, strings.NewReader(formData.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err = d.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("duckduckgo request: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		if attempt >= searchMaxAttempts {
			return nil, fmt.Errorf("duckduckgo rate limited after %d attempts", attempt)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo read: %w", err)
	}

	return parseLiteResults(string(body), limit), nil
}

// parseLiteResults extracts title/snippet pairs from the lite HTML, which
// keeps a simple row structure of result links and snippet cells.
func parseLiteResults(page string, limit int) []SearchResult {
	matches := resultLinkPattern.FindAllStringSubmatch(page, -1)
	if len(matches) == 0 {
		matches = resultLinkAltPattern.FindAllStringSubmatch(page, -1)
	}
	snippets := resultSnippetPattern.FindAllStringSubmatch(page, -1)

	var results []SearchResult
	for i, match := range matches {
		if len(match) < 3 {
			continue
		}

		link := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])
		if link == "" || title == "" {
			continue
		}

		description := ""
		if i < len(snippets) && len(snippets[i]) > 1 {
			description = cleanHTML(snippets[i][1])
		}

		results = append(results, SearchResult{
			Title:       title,
			Description: description,
			URL:         link,
		})
		if len(results) >= limit {
			break
		}
	}

	return results
}

func cleanHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
