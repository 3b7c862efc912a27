package schema

import (
	"context"
)

// Environment hosts a bounded group conversation. Messages are
// produced into memory and consumed one turn at a time until the
// round limit is reached.
type Environment interface {
	// Produce appends msgs to the conversation.
	Produce(ctx context.Context, msgs ...Message) error
	// Consume returns the next unhandled message, or nil once the
	// round limit is exceeded or nothing is left.
	Consume(ctx context.Context) *Message

	// GetTeam returns all team members.
	GetTeam() []Agent
	// GetTeamLeader returns the agent that speaks first.
	GetTeamLeader() Agent

	// LoadMemory returns the transcript so far.
	LoadMemory(ctx context.Context) []Message
}

// Memory is the conversation message store.
type Memory interface {
	Load(ctx context.Context, filter func(index int, message Message) bool) []Message

	// LoadNext returns the next unconsumed message and advances the
	// consumption index.
	LoadNext(ctx context.Context) *Message

	Save(ctx context.Context, msg Message) error
	// Clear memory contents.
	Clear(ctx context.Context) error
}

// SpeakerSelector is the turn-taking policy of the delegated
// conversation engine. Implementations decide who speaks next and
// when a message terminates the conversation; the driver never
// re-derives that logic.
type SpeakerSelector interface {
	// Next picks the agent that should reply to msg. A nil agent
	// ends the conversation.
	Next(ctx context.Context, msg *Message, team []Agent) (Agent, error)
	// Terminated reports whether msg ends the conversation.
	Terminated(msg *Message) bool
}
