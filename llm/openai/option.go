package openai

import (
	"net/http"
)

type options struct {
	token        string
	model        string
	baseURL      string
	organization string
	httpClient   *http.Client
}

type Option func(*options)

func WithToken(token string) Option {
	return func(opts *options) {
		opts.token = token
	}
}

func WithModel(model string) Option {
	return func(opts *options) {
		opts.model = model
	}
}

func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

func WithOrganization(organization string) Option {
	return func(opts *options) {
		opts.organization = organization
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = client
	}
}
