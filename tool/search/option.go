package search

import (
	"net/http"
)

type Options struct {
	TopK       int
	Endpoint   string
	HTTPClient *http.Client
	FullText   bool
	Provider   Provider
}

type Option func(*Options)

func WithTopK(topK int) Option {
	return func(opts *Options) {
		opts.TopK = topK
	}
}

func WithEndpoint(endpoint string) Option {
	return func(opts *Options) {
		opts.Endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

// WithFullText fetches each result page and replaces the snippet with
// the readable article text.
func WithFullText(fullText bool) Option {
	return func(opts *Options) {
		opts.FullText = fullText
	}
}

func WithProvider(provider Provider) Option {
	return func(opts *Options) {
		opts.Provider = provider
	}
}
