package search

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pkg/errors"
)

const (
	_defaultEndpoint = "https://html.duckduckgo.com/html/"
	_userAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// full-text extraction is capped so one long article does not
	// dominate the prompt
	_maxFullTextLen = 2000
)

// DuckDuckGo queries the html endpoint, which serves plain markup
// suitable for scraping without an API key.
type DuckDuckGo struct {
	endpoint string
	client   *http.Client
	fullText bool
}

var _ Provider = (*DuckDuckGo)(nil)

func NewDuckDuckGo(opts ...Option) *DuckDuckGo {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Endpoint == "" {
		options.Endpoint = _defaultEndpoint
	}
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	return &DuckDuckGo{
		endpoint: options.Endpoint,
		client:   options.HTTPClient,
		fullText: options.FullText,
	}
}

func (d *DuckDuckGo) Search(ctx context.Context, query string, max int) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build search request")
	}
	q := req.URL.Query()
	q.Set("q", query)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", _userAgent)

	res, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("search returned status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parse search response")
	}

	results := make([]Result, 0, max)
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link := s.Find("a.result__a")
		title := strings.TrimSpace(link.Text())
		body := strings.TrimSpace(s.Find(".result__snippet").Text())
		if title == "" && body == "" {
			return true
		}
		href, _ := link.Attr("href")
		results = append(results, Result{
			Title: title,
			URL:   resolveRedirect(href),
			Body:  body,
		})
		return max <= 0 || len(results) < max
	})

	if d.fullText {
		for i := range results {
			d.enrich(ctx, &results[i])
		}
	}
	return results, nil
}

// resolveRedirect unwraps the /l/?uddg=<target> indirection the html
// endpoint wraps result links in.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String()
}

// enrich replaces the snippet with readable article text. Failures
// leave the snippet untouched.
func (d *DuckDuckGo) enrich(ctx context.Context, r *Result) {
	pageURL, err := url.Parse(r.URL)
	if err != nil {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", _userAgent)
	res, err := d.client.Do(req)
	if err != nil {
		return
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return
	}
	article, err := readability.FromReader(res.Body, pageURL)
	if err != nil {
		return
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return
	}
	if len(text) > _maxFullTextLen {
		text = text[:_maxFullTextLen]
	}
	r.Body = text
}
