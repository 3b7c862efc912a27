package environment

import (
	"context"

	"github.com/bizvalid/bizvalid/memory"
	"github.com/bizvalid/bizvalid/schema"
)

// _defaultMaxTurn bounds a conversation at 50 exchange rounds.
const _defaultMaxTurn = 50

// Environment hosts one bounded group conversation. Messages are
// appended to memory by Produce and handed out one turn at a time by
// Consume; once MaxTurn rounds have been consumed Consume returns nil.
type Environment struct {
	Team    *Team
	Memory  schema.Memory
	MaxTurn int

	turn  int
	token int
}

var _ schema.Environment = (*Environment)(nil)

func NewEnv() *Environment {
	return &Environment{
		Team:    NewTeam(),
		Memory:  memory.NewBufferMemory(),
		MaxTurn: _defaultMaxTurn,
	}
}

func (e *Environment) Produce(ctx context.Context, msgs ...schema.Message) error {
	for _, msg := range msgs {
		e.token += msg.Tokens
		if err := e.Memory.Save(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// Consume returns the next unhandled message, or nil once the round
// limit is reached.
func (e *Environment) Consume(ctx context.Context) *schema.Message {
	if e.MaxTurn > 0 && e.turn >= e.MaxTurn {
		return nil
	}
	msg := e.Memory.LoadNext(ctx)
	if msg != nil {
		e.turn++
	}
	return msg
}

func (e *Environment) LoadMemory(ctx context.Context) []schema.Message {
	return e.Memory.Load(ctx, nil)
}

func (e *Environment) Agent(name string) schema.Agent {
	return e.Team.Member(name)
}

func (e *Environment) GetTeam() []schema.Agent {
	return e.Team.members
}

func (e *Environment) GetTeamLeader() schema.Agent {
	return e.Team.Leader
}

// TotalTokens reports the token usage accumulated across all produced
// messages.
func (e *Environment) TotalTokens() int {
	return e.token
}
