package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

// scriptedLLM answers each agent based on its system prompt, the way
// the real conversation unfolds.
type scriptedLLM struct {
	calls int
}

func (s *scriptedLLM) GenerateContent(_ context.Context, messages []llm.Message, _ ...llm.GenerateOption) (*llm.Generation, error) {
	s.calls++
	system := ""
	if len(messages) > 0 {
		system = messages[0].Content
	}
	content := "I have nothing to add."
	switch {
	case strings.Contains(system, "business idea clarifier"):
		content = "CLARIFIED IDEA: campus meal kits\nVALUE PROPOSITION: cheap dinners\nBUSINESS MODEL: subscriptions"
	case strings.Contains(system, "market research specialist"):
		content = "MARKET SIZE: $1B\nGROWTH TREND: up\nWEB SEARCH SOURCES: snippets"
	case strings.Contains(system, "competitive intelligence specialist"):
		content = "DIRECT COMPETITORS: HelloFresh\nINDIRECT COMPETITORS: dining halls"
	case strings.Contains(system, "SWOT analysis specialist"):
		content = "STRENGTHS: novel\nWEAKNESSES: churn\nOPPORTUNITIES: campuses\nTHREATS: incumbents"
	case strings.Contains(system, "business strategy consultant"):
		content = "STRATEGIC FEEDBACK: viable with focus\nVALIDATION STEPS: run a pilot\nTERMINATE"
	}
	return &llm.Generation{
		Content: content,
		Role:    schema.RoleAssistant,
		Usage:   &llm.Usage{TotalTokens: 10},
	}, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (*llm.Generation, error) {
	return s.GenerateContent(ctx, []llm.Message{llm.NewUserMessage("", prompt)}, opts...)
}

// chattyLLM never terminates.
type chattyLLM struct{}

func (chattyLLM) GenerateContent(context.Context, []llm.Message, ...llm.GenerateOption) (*llm.Generation, error) {
	return &llm.Generation{Content: "still thinking", Role: schema.RoleAssistant, Usage: &llm.Usage{}}, nil
}

func (c chattyLLM) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (*llm.Generation, error) {
	return c.GenerateContent(ctx, nil, opts...)
}

type stubProvider struct {
	results []search.Result
	err     error
	queries []string
}

func (p *stubProvider) Search(_ context.Context, query string, _ int) ([]search.Result, error) {
	p.queries = append(p.queries, query)
	return p.results, p.err
}

func TestValidateEndToEnd(t *testing.T) {
	provider := &stubProvider{results: []search.Result{
		{Title: "a", Body: "snippet one"},
		{Title: "b", Body: "snippet two"},
	}}
	v, err := New(
		WithLLM(&scriptedLLM{}),
		WithSearchProvider(provider),
	)
	require.NoError(t, err)

	report, err := v.Validate(context.Background(), "campus meal kits")
	require.NoError(t, err)

	assert.Contains(t, report, "**Business Idea:** campus meal kits")
	assert.Contains(t, report, "MARKET SIZE: $1B")
	assert.Contains(t, report, "DIRECT COMPETITORS: HelloFresh")
	assert.Contains(t, report, "CLARIFIED IDEA: campus meal kits")
	assert.Contains(t, report, "STRENGTHS: novel")
	assert.Contains(t, report, "STRATEGIC FEEDBACK: viable with focus")
	assert.NotContains(t, report, "output found.)")

	// both research roles searched with their fixed query templates
	require.Len(t, provider.queries, 2)
	assert.Equal(t, "market trends and analysis for campus meal kits", provider.queries[0])
	assert.Equal(t, "top competitors and alternatives for campus meal kits", provider.queries[1])
}

func TestRunConversationWorkflowOrder(t *testing.T) {
	v, err := New(
		WithLLM(&scriptedLLM{}),
		WithSearchProvider(&stubProvider{}),
	)
	require.NoError(t, err)

	transcript, err := v.RunConversation(context.Background(), "campus meal kits")
	require.NoError(t, err)
	require.Len(t, transcript, 6)

	assert.Equal(t, UserProxyName, transcript[0].Sender)
	assert.Equal(t, schema.RoleUser, transcript[0].Role)
	for i, name := range DefaultSpeakingOrder {
		assert.Equal(t, name, transcript[i+1].Sender)
		assert.Equal(t, schema.RoleAssistant, transcript[i+1].Role)
	}
	assert.True(t, transcript[len(transcript)-1].IsTermination())
}

func TestRunConversationSearchFailureDegrades(t *testing.T) {
	provider := &stubProvider{err: assert.AnError}
	v, err := New(
		WithLLM(&scriptedLLM{}),
		WithSearchProvider(provider),
	)
	require.NoError(t, err)

	transcript, err := v.RunConversation(context.Background(), "campus meal kits")
	require.NoError(t, err)

	// provider was consulted and failed; nothing was injected
	assert.Len(t, provider.queries, 2)
	for _, m := range transcript {
		assert.NotContains(t, m.Content, "WEB SEARCH RESULTS:")
	}
}

func TestRunConversationRoundLimit(t *testing.T) {
	v, err := New(
		WithLLM(chattyLLM{}),
		WithSearchProvider(&stubProvider{}),
		WithMaxTurn(7),
	)
	require.NoError(t, err)

	transcript, err := v.RunConversation(context.Background(), "campus meal kits")
	require.NoError(t, err)

	// seed plus one reply per consumed round
	assert.Len(t, transcript, 8)
	for _, m := range transcript {
		assert.False(t, m.IsTermination())
	}
}

func TestNewRequiresLLM(t *testing.T) {
	t.Parallel()
	_, err := New()
	assert.ErrorIs(t, err, schema.ErrMissingLLM)
}
