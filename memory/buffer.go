package memory

import (
	"context"

	"github.com/bizvalid/bizvalid/schema"
)

// Buffer is an in-process append-only message store with a
// consumption index. The index only moves forward via LoadNext.
type Buffer struct {
	Messages []schema.Message
	index    int
}

var _ schema.Memory = (*Buffer)(nil)

func NewBufferMemory() *Buffer {
	return &Buffer{}
}

func (c *Buffer) Load(_ context.Context, filter func(index int, message schema.Message) bool) []schema.Message {
	msgs := make([]schema.Message, 0, len(c.Messages))
	for i, message := range c.Messages {
		if filter == nil || filter(i, message) {
			msgs = append(msgs, message)
		}
	}
	return msgs
}

func (c *Buffer) LoadNext(_ context.Context) *schema.Message {
	if c.index >= len(c.Messages) {
		return nil
	}
	c.index++
	return &c.Messages[c.index-1]
}

func (c *Buffer) Save(_ context.Context, msg schema.Message) error {
	c.Messages = append(c.Messages, msg)
	return nil
}

func (c *Buffer) Clear(_ context.Context) error {
	c.Messages = c.Messages[:0]
	c.index = 0
	return nil
}
