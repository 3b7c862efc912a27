package validator

import (
	"github.com/bizvalid/bizvalid/callback"
	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

type Options struct {
	LLM        llm.LLM
	Provider   search.Provider
	Callback   callback.Handler
	Selector   schema.SpeakerSelector
	MaxTurn    int
	SearchTopK int
}

type Option func(*Options)

func WithLLM(model llm.LLM) Option {
	return func(opts *Options) {
		opts.LLM = model
	}
}

func WithSearchProvider(provider search.Provider) Option {
	return func(opts *Options) {
		opts.Provider = provider
	}
}

func WithCallback(handler callback.Handler) Option {
	return func(opts *Options) {
		opts.Callback = handler
	}
}

// WithSelector replaces the turn-taking policy. The default walks
// the fixed workflow order.
func WithSelector(selector schema.SpeakerSelector) Option {
	return func(opts *Options) {
		opts.Selector = selector
	}
}

func WithMaxTurn(maxTurn int) Option {
	return func(opts *Options) {
		opts.MaxTurn = maxTurn
	}
}

func WithSearchTopK(topK int) Option {
	return func(opts *Options) {
		opts.SearchTopK = topK
	}
}
