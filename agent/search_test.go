package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

type stubProvider struct {
	results []search.Result
	err     error
	calls   int
	lastMax int
}

func (p *stubProvider) Search(_ context.Context, _ string, max int) ([]search.Result, error) {
	p.calls++
	p.lastMax = max
	return p.results, p.err
}

func newTestSearchAgent(t *testing.T, model *captureLLM, provider search.Provider) *SearchAgent {
	t.Helper()
	sa, err := NewSearchAgent(
		WithName("MarketResearcher"),
		WithDesc("research"),
		WithPrompt("You are a market research specialist."),
		WithLLM(model),
		WithSearchProvider(provider),
		WithSearchQuery("market trends and analysis for meal kits"),
	)
	require.NoError(t, err)
	return sa
}

func TestSearchAgentAppendsTopThreeSnippets(t *testing.T) {
	t.Parallel()
	provider := &stubProvider{results: []search.Result{
		{Body: "one"}, {Body: "two"}, {Body: "three"}, {Body: "four"}, {Body: "five"},
	}}
	model := &captureLLM{content: "MARKET SIZE: $1B"}
	sa := newTestSearchAgent(t, model, provider)

	incoming := []schema.Message{
		schema.NewUserMessage("UserProxy", "validate meal kits"),
	}
	_, err := sa.Run(context.Background(), incoming)
	require.NoError(t, err)

	// five fetched, first three injected under the banner
	assert.Equal(t, 5, provider.lastMax)
	require.Len(t, model.captured, 2)
	assert.Equal(t,
		"validate meal kits"+SearchBanner+"one\ntwo\nthree",
		model.captured[1].Content)
	// the caller's transcript copy stays untouched
	assert.Equal(t, "validate meal kits", incoming[0].Content)
}

func TestSearchAgentProviderFailureDegrades(t *testing.T) {
	t.Parallel()
	provider := &stubProvider{err: assert.AnError}
	model := &captureLLM{content: "MARKET SIZE: unknown"}
	sa := newTestSearchAgent(t, model, provider)

	_, err := sa.Run(context.Background(), []schema.Message{
		schema.NewUserMessage("UserProxy", "validate meal kits"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	require.Len(t, model.captured, 2)
	assert.Equal(t, "validate meal kits", model.captured[1].Content)
}

func TestSearchAgentNoResults(t *testing.T) {
	t.Parallel()
	provider := &stubProvider{}
	model := &captureLLM{content: "MARKET SIZE: unknown"}
	sa := newTestSearchAgent(t, model, provider)

	_, err := sa.Run(context.Background(), []schema.Message{
		schema.NewUserMessage("UserProxy", "validate meal kits"),
	})
	require.NoError(t, err)

	assert.Equal(t, "validate meal kits", model.captured[1].Content)
}

func TestSearchAgentRefetchesEveryTurn(t *testing.T) {
	t.Parallel()
	provider := &stubProvider{results: []search.Result{{Body: "one"}}}
	sa := newTestSearchAgent(t, &captureLLM{content: "x"}, provider)

	msgs := []schema.Message{schema.NewUserMessage("UserProxy", "hi")}
	_, err := sa.Run(context.Background(), msgs)
	require.NoError(t, err)
	_, err = sa.Run(context.Background(), msgs)
	require.NoError(t, err)

	// no cache: an identical query re-fetches
	assert.Equal(t, 2, provider.calls)
}

func TestNewSearchAgentRequiresProvider(t *testing.T) {
	t.Parallel()
	_, err := NewSearchAgent(
		WithName("n"),
		WithDesc("d"),
		WithPrompt("p"),
		WithLLM(&captureLLM{content: "x"}),
	)
	assert.ErrorIs(t, err, schema.ErrMissingProvider)
}
