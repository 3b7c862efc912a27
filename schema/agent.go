package schema

import (
	"context"
	"errors"

	"github.com/bizvalid/bizvalid/llm"
)

// Generation is the output of a single agent turn.
type Generation struct {
	Message     Message
	TotalTokens int
}

// Agent is the interface all conversation participants implement.
type Agent interface {
	Run(ctx context.Context, messages []Message, opts ...llm.GenerateOption) (*Generation, error)

	Name() string

	Description() string

	WithEnv(env Environment)

	Env() Environment
}

var (
	ErrMissingLLM      = errors.New("missing field LLM")
	ErrMissingName     = errors.New("missing agent name")
	ErrMissingDesc     = errors.New("missing agent desc")
	ErrMissingPrompt   = errors.New("missing agent prompt")
	ErrMissingProvider = errors.New("missing search provider")
	ErrMissingTeam     = errors.New("missing team members")
	ErrEmptyGeneration = errors.New("llm returned an empty generation")
)

// ConvertAgentNames joins agent names for prompt interpolation.
func ConvertAgentNames(agents []Agent) string {
	var names string
	for i, a := range agents {
		if i > 0 {
			names += ", "
		}
		names += a.Name()
	}
	return names
}

// ConvertAgentDescriptions renders a roster block for prompt
// interpolation.
func ConvertAgentDescriptions(agents []Agent) string {
	var roster string
	for _, a := range agents {
		roster += "- " + a.Name() + ": " + a.Description() + "\n"
	}
	return roster
}
