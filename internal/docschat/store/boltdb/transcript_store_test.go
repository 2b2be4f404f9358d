package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
)

func newTestStore(t *testing.T) *TranscriptStore {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "docschat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewTranscriptStore(db)
}

func sampleTranscript(id string) *entity.Transcript {
	return &entity.Transcript{
		ID: id,
		Messages: []*entity.Message{
			entity.NewUserMessage("how do I get NFT metadata?"),
		},
		Reply: "Use the getNFTMetadata endpoint.",
		ToolCalls: []*entity.ToolInvocation{
			{Name: "get_moralis_api_endpoints", Arguments: `{"ids":["getNFTMetadata"]}`, Result: "[...]"},
		},
		Turns:     2,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := sampleTranscript("chat-1")
	require.NoError(t, s.Create(ctx, want))

	got, err := s.Get(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Reply, got.Reply)
	assert.Equal(t, want.Turns, got.Turns)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, want.Messages[0].Content, got.Messages[0].Content)
	require.Len(t, got.ToolCalls, 1)
	assert.Equal(t, want.ToolCalls[0].Name, got.ToolCalls[0].Name)
}

func TestTranscriptGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTranscriptCreateOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := sampleTranscript("chat-2")
	require.NoError(t, s.Create(ctx, first))

	second := sampleTranscript("chat-2")
	second.Reply = "updated reply"
	require.NoError(t, s.Create(ctx, second))

	got, err := s.Get(ctx, "chat-2")
	require.NoError(t, err)
	assert.Equal(t, "updated reply", got.Reply)
}

func TestTranscriptList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleTranscript("chat-a")))
	require.NoError(t, s.Create(ctx, sampleTranscript("chat-b")))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
