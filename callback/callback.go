package callback

import (
	"context"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
)

// Handler observes the validation run. It replaces patching the LLM
// client's call path: callers opt into logging per construction
// instead of mutating process-wide state.
type Handler interface {
	HandleAgentStart(ctx context.Context, agent string, messages []schema.Message)
	HandleAgentEnd(ctx context.Context, agent string, gen *schema.Generation)

	HandleLLMStart(ctx context.Context, messages []llm.Message)
	HandleLLMEnd(ctx context.Context, gen *llm.Generation)

	HandleSearchStart(ctx context.Context, agent, query string)
	HandleSearchEnd(ctx context.Context, agent, query string, hits int, err error)
}
