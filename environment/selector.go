package environment

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/thoas/go-funk"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
)

// RoundRobinSelector walks a fixed speaking order. The agent after
// the last speaker replies next; senders outside the order (the user
// proxy) hand the floor to the first agent in the order.
type RoundRobinSelector struct {
	Order []string
}

var _ schema.SpeakerSelector = (*RoundRobinSelector)(nil)

func NewRoundRobinSelector(order ...string) *RoundRobinSelector {
	return &RoundRobinSelector{Order: order}
}

func (s *RoundRobinSelector) Next(_ context.Context, msg *schema.Message, team []schema.Agent) (schema.Agent, error) {
	if msg == nil || len(team) == 0 {
		return nil, nil
	}
	order := s.Order
	if len(order) == 0 {
		for _, a := range team {
			order = append(order, a.Name())
		}
	}
	next := order[0]
	if funk.ContainsString(order, msg.Sender) {
		for i, name := range order {
			if strings.EqualFold(name, msg.Sender) {
				next = order[(i+1)%len(order)]
				break
			}
		}
	}
	for _, a := range team {
		if strings.EqualFold(a.Name(), next) {
			return a, nil
		}
	}
	return nil, errors.Errorf("selector picked unknown agent %s", next)
}

func (s *RoundRobinSelector) Terminated(msg *schema.Message) bool {
	return msg != nil && msg.IsTermination()
}

const _selectorPrompt = `You are coordinating a group conversation between these participants:
%s
Read the latest message and select the participant who should speak next.
Respond with that participant's name and nothing else.

Latest message from %s:
%s`

// LLMSelector asks the model to name the next speaker, the way a
// delegated group-chat manager does. Unrecognized answers fall back
// to round-robin order.
type LLMSelector struct {
	LLM      llm.LLM
	fallback *RoundRobinSelector
}

var _ schema.SpeakerSelector = (*LLMSelector)(nil)

func NewLLMSelector(model llm.LLM, order ...string) *LLMSelector {
	return &LLMSelector{
		LLM:      model,
		fallback: NewRoundRobinSelector(order...),
	}
}

func (s *LLMSelector) Next(ctx context.Context, msg *schema.Message, team []schema.Agent) (schema.Agent, error) {
	if msg == nil || len(team) == 0 {
		return nil, nil
	}
	prompt := sprintfSelector(msg, team)
	gen, err := s.LLM.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		return nil, errors.Wrap(err, "speaker selection failed")
	}
	answer := strings.TrimSpace(gen.Content)
	for _, a := range team {
		if strings.EqualFold(a.Name(), answer) {
			return a, nil
		}
	}
	return s.fallback.Next(ctx, msg, team)
}

func (s *LLMSelector) Terminated(msg *schema.Message) bool {
	return msg != nil && msg.IsTermination()
}

func sprintfSelector(msg *schema.Message, team []schema.Agent) string {
	sender := msg.Sender
	if sender == "" {
		sender = schema.RoleUser
	}
	return fmt.Sprintf(_selectorPrompt,
		schema.ConvertAgentDescriptions(team), sender, msg.Content)
}
