package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizvalid/bizvalid/schema"
)

func TestBufferSaveLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buf := NewBufferMemory()

	require.NoError(t, buf.Save(ctx, schema.NewUserMessage("UserProxy", "a")))
	require.NoError(t, buf.Save(ctx, schema.NewAssistantMessage("Clarifier", "b")))

	msgs := buf.Load(ctx, nil)
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].Content)
	assert.Equal(t, "b", msgs[1].Content)
}

func TestBufferLoadFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buf := NewBufferMemory()
	require.NoError(t, buf.Save(ctx, schema.NewUserMessage("UserProxy", "a")))
	require.NoError(t, buf.Save(ctx, schema.NewAssistantMessage("Clarifier", "b")))

	msgs := buf.Load(ctx, func(_ int, m schema.Message) bool {
		return m.IsAssistant()
	})
	require.Len(t, msgs, 1)
	assert.Equal(t, "b", msgs[0].Content)
}

func TestBufferLoadNextAdvances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buf := NewBufferMemory()
	require.NoError(t, buf.Save(ctx, schema.NewUserMessage("UserProxy", "a")))

	msg := buf.LoadNext(ctx)
	require.NotNil(t, msg)
	assert.Equal(t, "a", msg.Content)
	assert.Nil(t, buf.LoadNext(ctx))

	// appending after draining resumes from the new message
	require.NoError(t, buf.Save(ctx, schema.NewAssistantMessage("Clarifier", "b")))
	msg = buf.LoadNext(ctx)
	require.NotNil(t, msg)
	assert.Equal(t, "b", msg.Content)
}

func TestBufferClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buf := NewBufferMemory()
	require.NoError(t, buf.Save(ctx, schema.NewUserMessage("UserProxy", "a")))
	require.NoError(t, buf.Clear(ctx))

	assert.Empty(t, buf.Load(ctx, nil))
	assert.Nil(t, buf.LoadNext(ctx))
}
