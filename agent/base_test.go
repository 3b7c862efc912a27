package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
)

// captureLLM records the messages it was asked to complete.
type captureLLM struct {
	content  string
	captured []llm.Message
}

func (c *captureLLM) GenerateContent(_ context.Context, messages []llm.Message, _ ...llm.GenerateOption) (*llm.Generation, error) {
	c.captured = messages
	return &llm.Generation{
		Content: c.content,
		Role:    schema.RoleAssistant,
		Usage:   &llm.Usage{TotalTokens: 7},
	}, nil
}

func (c *captureLLM) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (*llm.Generation, error) {
	return c.GenerateContent(ctx, []llm.Message{llm.NewUserMessage("", prompt)}, opts...)
}

func TestNewBaseAgentValidation(t *testing.T) {
	t.Parallel()
	model := &captureLLM{content: "ok"}
	type testCase struct {
		name     string
		opts     []Option
		expected error
	}
	testCases := []testCase{
		{
			name:     "missing name",
			opts:     []Option{WithDesc("d"), WithPrompt("p"), WithLLM(model)},
			expected: schema.ErrMissingName,
		},
		{
			name:     "missing desc",
			opts:     []Option{WithName("n"), WithPrompt("p"), WithLLM(model)},
			expected: schema.ErrMissingDesc,
		},
		{
			name:     "missing prompt",
			opts:     []Option{WithName("n"), WithDesc("d"), WithLLM(model)},
			expected: schema.ErrMissingPrompt,
		},
		{
			name:     "missing llm",
			opts:     []Option{WithName("n"), WithDesc("d"), WithPrompt("p")},
			expected: schema.ErrMissingLLM,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBaseAgent(tc.opts...)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestBaseAgentRun(t *testing.T) {
	t.Parallel()
	model := &captureLLM{content: "STRENGTHS: novel"}
	base, err := NewBaseAgent(
		WithName("SWOTAnalyst"),
		WithDesc("swot"),
		WithPrompt("You are a SWOT analysis specialist."),
		WithLLM(model),
	)
	require.NoError(t, err)

	gen, err := base.Run(context.Background(), []schema.Message{
		schema.NewUserMessage("UserProxy", "validate this idea"),
		schema.NewAssistantMessage("Clarifier", "CLARIFIED IDEA: x"),
		schema.NewAssistantMessage("SWOTAnalyst", "earlier take"),
	})
	require.NoError(t, err)

	assert.Equal(t, schema.RoleAssistant, gen.Message.Role)
	assert.Equal(t, "SWOTAnalyst", gen.Message.Sender)
	assert.Equal(t, "STRENGTHS: novel", gen.Message.Content)
	assert.Equal(t, 7, gen.TotalTokens)

	// system prompt first, own turns mapped to assistant, the rest
	// to user
	require.Len(t, model.captured, 4)
	assert.Equal(t, llm.RoleSystem, model.captured[0].Role)
	assert.Equal(t, llm.RoleUser, model.captured[1].Role)
	assert.Equal(t, llm.RoleUser, model.captured[2].Role)
	assert.Equal(t, "Clarifier", model.captured[2].Name)
	assert.Equal(t, llm.RoleAssistant, model.captured[3].Role)
}

func TestBaseAgentEmptyGeneration(t *testing.T) {
	t.Parallel()
	base, err := NewBaseAgent(
		WithName("n"),
		WithDesc("d"),
		WithPrompt("p"),
		WithLLM(&captureLLM{content: "  \n"}),
	)
	require.NoError(t, err)

	_, err = base.Run(context.Background(), nil)
	assert.ErrorIs(t, err, schema.ErrEmptyGeneration)
}
