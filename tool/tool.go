package tool

import (
	"context"
)

const (
	TypeJson   = "object"
	TypeString = "string"
)

type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type PropertiesSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// Tool is an action an agent can invoke with a JSON argument.
type Tool interface {
	Name() string

	Description() string

	Schema() *PropertiesSchema

	Strict() bool

	Call(ctx context.Context, input string) (string, error)
}
