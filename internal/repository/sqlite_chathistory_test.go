package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

func seedMessages(t *testing.T, repo *SQLiteChatHistoryRepo, n int) []*domain.ChatMessage {
	t.Helper()
	var out []*domain.ChatMessage
	for i := 0; i < n; i++ {
		sender := domain.SenderUser
		if i%2 == 1 {
			sender = domain.SenderBot
		}
		m := testutil.NewTestMessage(sender, fmt.Sprintf("msg-%02d", i))
		require.NoError(t, repo.Append(context.Background(), m))
		out = append(out, m)
	}
	return out
}

func texts(msgs []*domain.ChatMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

func TestChatHistoryRepo_AppendAndListAll(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	seeded := seedMessages(t, repo, 3)

	got, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"msg-00", "msg-01", "msg-02"}, texts(got))
	assert.Equal(t, seeded[1].ID, got[1].ID)
	assert.Equal(t, domain.SenderBot, got[1].Sender)
	assert.WithinDuration(t, seeded[0].CreatedAt, got[0].CreatedAt, time.Millisecond)
}

func TestChatHistoryRepo_ListRecentReturnsNewestOldestFirst(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	seedMessages(t, repo, 5)

	got, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"msg-03", "msg-04"}, texts(got))
}

func TestChatHistoryRepo_SameTimestampKeepsInsertOrder(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, text := range []string{"b", "a", "c"} {
		m := testutil.NewTestMessage(domain.SenderUser, text)
		m.CreatedAt = at
		require.NoError(t, repo.Append(ctx, m))
	}

	got, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, texts(got))
}

func TestChatHistoryRepo_Trim(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	seedMessages(t, repo, 25)

	removed, err := repo.Trim(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "msg-24", got[0].Text)

	removed, err = repo.Trim(ctx, 50)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestChatHistoryRepo_Clear(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	seedMessages(t, repo, 4)

	require.NoError(t, repo.Clear(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChatHistoryRepo_DuplicateIDRejected(t *testing.T) {
	repo := NewSQLiteChatHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	m := testutil.NewTestMessage(domain.SenderUser, "hi")
	require.NoError(t, repo.Append(ctx, m))
	assert.Error(t, repo.Append(ctx, m))
}
