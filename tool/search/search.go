package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bizvalid/bizvalid/tool"
)

const _defaultTopK = 5

// Result is a single search hit.
type Result struct {
	Title string
	URL   string
	Body  string
}

// Provider returns up to max text results for a free-text query.
type Provider interface {
	Search(ctx context.Context, query string, max int) ([]Result, error)
}

// Tool exposes a Provider as an agent-invocable tool.
type Tool struct {
	TopK     int
	provider Provider
}

var _ tool.Tool = (*Tool)(nil)

func New(opts ...Option) (*Tool, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.TopK <= 0 {
		options.TopK = _defaultTopK
	}
	provider := options.Provider
	if provider == nil {
		provider = NewDuckDuckGo(opts...)
	}
	return &Tool{
		TopK:     options.TopK,
		provider: provider,
	}, nil
}

func (t *Tool) Name() string {
	return "Web Search"
}

func (t *Tool) Description() string {
	raw, _ := json.Marshal(t.Schema())
	return fmt.Sprintf(`A wrapper around web search.
Useful for when you need to answer questions about current events,
the input must be json schema: %s`, string(raw)) + `
Example Input: {\"query\": \"market size for meal kits\"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"query": {
				Type:        tool.TypeString,
				Description: "the query to search the web for",
			},
		},
		Required: []string{"query"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		return "json unmarshal error, please try again", nil
	}
	query, _ := m["query"].(string)
	if query == "" {
		return "query is required", nil
	}

	results, err := t.provider.Search(ctx, query, t.TopK)
	if err != nil {
		return "Query Search Engine Error, Please Try Again", nil
	}
	if len(results) == 0 {
		return "No results found", nil
	}

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n%s\n%s", i+1, r.Title, r.URL, r.Body))
	}
	return sb.String(), nil
}
