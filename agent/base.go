package agent

import (
	"context"
	"strings"

	"github.com/bizvalid/bizvalid/callback"
	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
)

var _ schema.Agent = (*BaseAgent)(nil)

// BaseAgent is a prompt-engineered chat participant: a fixed system
// prompt plus the transcript so far, answered with one chat
// completion. The ReAct tool loop is not needed here; every
// validation agent speaks plain text.
type BaseAgent struct {
	name   string
	desc   string
	prompt string

	llm      llm.LLM
	env      schema.Environment
	callback callback.Handler
}

func NewBaseAgent(opts ...Option) (*BaseAgent, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.name == "" {
		return nil, schema.ErrMissingName
	}
	if options.desc == "" {
		return nil, schema.ErrMissingDesc
	}
	if options.prompt == "" {
		return nil, schema.ErrMissingPrompt
	}
	if options.LLM == nil {
		return nil, schema.ErrMissingLLM
	}
	return &BaseAgent{
		name:     options.name,
		desc:     options.desc,
		prompt:   options.prompt,
		llm:      options.LLM,
		env:      options.Env,
		callback: options.Callback,
	}, nil
}

func (ba *BaseAgent) Run(ctx context.Context,
	messages []schema.Message, opts ...llm.GenerateOption) (*schema.Generation, error) {
	content := ba.buildContent(messages)

	if ba.callback != nil {
		ba.callback.HandleLLMStart(ctx, content)
	}
	output, err := ba.llm.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, err
	}
	if ba.callback != nil {
		ba.callback.HandleLLMEnd(ctx, output)
	}
	if strings.TrimSpace(output.Content) == "" {
		return nil, schema.ErrEmptyGeneration
	}

	msg := schema.NewAssistantMessage(ba.name, output.Content)
	tokens := 0
	if output.Usage != nil {
		tokens = output.Usage.TotalTokens
	}
	msg.Tokens = tokens
	return &schema.Generation{
		Message:     msg,
		TotalTokens: tokens,
	}, nil
}

// buildContent maps the transcript onto chat-completion messages:
// the agent's own turns become assistant messages, everything else a
// user message attributed to its sender.
func (ba *BaseAgent) buildContent(messages []schema.Message) []llm.Message {
	content := make([]llm.Message, 0, len(messages)+1)
	content = append(content, llm.NewSystemMessage(ba.prompt))
	for _, m := range messages {
		if strings.EqualFold(m.Sender, ba.name) {
			content = append(content, llm.NewAssistantMessage(m.Sender, m.Content))
			continue
		}
		content = append(content, llm.NewUserMessage(m.Sender, m.Content))
	}
	return content
}

func (ba *BaseAgent) Name() string {
	return ba.name
}

func (ba *BaseAgent) Description() string {
	return ba.desc
}

func (ba *BaseAgent) WithEnv(env schema.Environment) {
	ba.env = env
}

func (ba *BaseAgent) Env() schema.Environment {
	return ba.env
}
