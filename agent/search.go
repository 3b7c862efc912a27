package agent

import (
	"context"
	"strings"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

const (
	// SearchBanner precedes injected snippets in the message content.
	SearchBanner = "\n\nWEB SEARCH RESULTS:\n"

	_defaultSearchTopK  = 5
	_defaultMaxSnippets = 3
)

// SearchAgent augments a BaseAgent with a live web search: before
// each reply it fetches snippets for its fixed query and appends the
// first few to the latest incoming message, then delegates. Provider
// failures are swallowed and the reply proceeds unaugmented; there is
// no retry and no cache, an identical query re-fetches.
type SearchAgent struct {
	*BaseAgent

	provider    search.Provider
	query       string
	topK        int
	maxSnippets int
}

var _ schema.Agent = (*SearchAgent)(nil)

func NewSearchAgent(opts ...Option) (*SearchAgent, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Provider == nil {
		return nil, schema.ErrMissingProvider
	}
	base, err := NewBaseAgent(opts...)
	if err != nil {
		return nil, err
	}
	if options.TopK <= 0 {
		options.TopK = _defaultSearchTopK
	}
	if options.MaxSnippets <= 0 {
		options.MaxSnippets = _defaultMaxSnippets
	}
	return &SearchAgent{
		BaseAgent:   base,
		provider:    options.Provider,
		query:       options.SearchQuery,
		topK:        options.TopK,
		maxSnippets: options.MaxSnippets,
	}, nil
}

func (sa *SearchAgent) Run(ctx context.Context,
	messages []schema.Message, opts ...llm.GenerateOption) (*schema.Generation, error) {
	if len(messages) > 0 && sa.query != "" {
		if snippets := sa.searchSnippets(ctx); len(snippets) > 0 {
			// augment a copy so the transcript itself stays untouched
			msgs := append([]schema.Message(nil), messages...)
			msgs[len(msgs)-1].Content += SearchBanner + strings.Join(snippets, "\n")
			messages = msgs
		}
	}
	return sa.BaseAgent.Run(ctx, messages, opts...)
}

func (sa *SearchAgent) searchSnippets(ctx context.Context) []string {
	if sa.callback != nil {
		sa.callback.HandleSearchStart(ctx, sa.Name(), sa.query)
	}
	results, err := sa.provider.Search(ctx, sa.query, sa.topK)
	if sa.callback != nil {
		sa.callback.HandleSearchEnd(ctx, sa.Name(), sa.query, len(results), err)
	}
	if err != nil || len(results) == 0 {
		return nil
	}
	n := sa.maxSnippets
	if len(results) < n {
		n = len(results)
	}
	snippets := make([]string, 0, n)
	for _, r := range results[:n] {
		snippets = append(snippets, r.Body)
	}
	return snippets
}
