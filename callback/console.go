package callback

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tidwall/pretty"

	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
)

// ConsoleHandler logs run progress to a writer. With Verbose set it
// also dumps message payloads as indented JSON.
type ConsoleHandler struct {
	Verbose bool

	logger *log.Logger
}

var _ Handler = (*ConsoleHandler)(nil)

func NewConsoleHandler(w io.Writer, verbose bool) *ConsoleHandler {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleHandler{
		Verbose: verbose,
		logger:  log.New(w, "", log.LstdFlags),
	}
}

func (h *ConsoleHandler) HandleAgentStart(_ context.Context, agent string, messages []schema.Message) {
	h.logger.Printf("[%s] replying to %d messages", agent, len(messages))
	if h.Verbose && len(messages) > 0 {
		h.dump(messages[len(messages)-1])
	}
}

func (h *ConsoleHandler) HandleAgentEnd(_ context.Context, agent string, gen *schema.Generation) {
	if gen == nil {
		return
	}
	h.logger.Printf("[%s] produced %d chars (%d tokens)",
		agent, len(gen.Message.Content), gen.TotalTokens)
	if h.Verbose {
		h.dump(gen.Message)
	}
}

func (h *ConsoleHandler) HandleLLMStart(_ context.Context, messages []llm.Message) {
	first := ""
	if len(messages) > 0 {
		first = messages[0].Content
	}
	if len(first) > 100 {
		first = first[:100]
	}
	h.logger.Printf("[LOG] LLM call: %d messages, first_message=%q", len(messages), first)
}

func (h *ConsoleHandler) HandleLLMEnd(_ context.Context, gen *llm.Generation) {
	if gen == nil || gen.Usage == nil {
		return
	}
	h.logger.Printf("[LOG] completion finished: stop=%s, tokens=%d",
		gen.StopReason, gen.Usage.TotalTokens)
}

func (h *ConsoleHandler) HandleSearchStart(_ context.Context, agent, query string) {
	h.logger.Printf("[DEBUG] %s performing web search: %s", agent, query)
}

func (h *ConsoleHandler) HandleSearchEnd(_ context.Context, agent, query string, hits int, err error) {
	if err != nil {
		h.logger.Printf("Web search error: %v", err)
		return
	}
	if hits == 0 {
		h.logger.Printf("[DEBUG] No web search results found for %s", agent)
		return
	}
	h.logger.Printf("[DEBUG] Found %d web search results", hits)
}

func (h *ConsoleHandler) dump(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintln(h.logger.Writer(), string(pretty.Pretty(raw)))
}
