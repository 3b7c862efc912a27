package llm

import (
	"context"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat-completion message.
type Message struct {
	Role    Role
	Name    string
	Content string
}

func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func NewUserMessage(name, content string) Message {
	return Message{Role: RoleUser, Name: name, Content: content}
}

func NewAssistantMessage(name, content string) Message {
	return Message{Role: RoleAssistant, Name: name, Content: content}
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Generation is the output of a single completion.
type Generation struct {
	Content    string
	Role       string
	StopReason string
	Usage      *Usage
}

// LLM is the interface all chat-completion providers implement.
type LLM interface {
	GenerateContent(ctx context.Context, messages []Message, opts ...GenerateOption) (*Generation, error)

	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (*Generation, error)
}
