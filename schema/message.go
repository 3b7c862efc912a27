package schema

import (
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TerminationToken ends the conversation when a message's trailing
// text (whitespace stripped) ends with it.
const TerminationToken = "TERMINATE"

// Message is a single role-tagged entry in a conversation transcript.
// Sender is the name of the agent that produced it; the user proxy
// speaks with RoleUser, every agent with RoleAssistant.
type Message struct {
	Role    string `json:"role"`
	Sender  string `json:"sender,omitempty"`
	Content string `json:"content"`
	Tokens  int    `json:"tokens,omitempty"`
}

func (m *Message) IsAssistant() bool {
	return strings.EqualFold(m.Role, RoleAssistant)
}

// IsTermination reports whether the message signals the end of the
// conversation.
func (m *Message) IsTermination() bool {
	return strings.HasSuffix(
		strings.TrimSpace(m.Content), TerminationToken)
}

func NewUserMessage(sender, content string) Message {
	return Message{Role: RoleUser, Sender: sender, Content: content}
}

func NewAssistantMessage(sender, content string) Message {
	return Message{Role: RoleAssistant, Sender: sender, Content: content}
}
