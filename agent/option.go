package agent

import (
	"github.com/bizvalid/bizvalid/callback"
	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

type Option func(opt *Options)

type Options struct {
	name   string
	desc   string
	prompt string

	LLM      llm.LLM
	Env      schema.Environment
	Callback callback.Handler

	Provider    search.Provider
	SearchQuery string
	TopK        int
	MaxSnippets int
}

func WithName(name string) Option {
	return func(opt *Options) {
		opt.name = name
	}
}

func WithDesc(desc string) Option {
	return func(opt *Options) {
		opt.desc = desc
	}
}

func WithPrompt(prompt string) Option {
	return func(opt *Options) {
		opt.prompt = prompt
	}
}

func WithLLM(LLM llm.LLM) Option {
	return func(opt *Options) {
		opt.LLM = LLM
	}
}

func WithEnv(env schema.Environment) Option {
	return func(opt *Options) {
		opt.Env = env
	}
}

func WithCallback(callback callback.Handler) Option {
	return func(opt *Options) {
		opt.Callback = callback
	}
}

// WithSearchProvider enables the web-search augmentation shim.
func WithSearchProvider(provider search.Provider) Option {
	return func(opt *Options) {
		opt.Provider = provider
	}
}

// WithSearchQuery sets the fixed query a search agent issues before
// every reply.
func WithSearchQuery(query string) Option {
	return func(opt *Options) {
		opt.SearchQuery = query
	}
}

func WithTopK(topK int) Option {
	return func(opt *Options) {
		opt.TopK = topK
	}
}

func WithMaxSnippets(maxSnippets int) Option {
	return func(opt *Options) {
		opt.MaxSnippets = maxSnippets
	}
}
