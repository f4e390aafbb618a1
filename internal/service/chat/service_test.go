package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) ListLatest(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	messages, _ := args.Get(0).([]*domain.ChatMessage)
	return messages, args.Error(1)
}

func TestService_History_ChronologicalOrder(t *testing.T) {
	now := time.Now()
	repo := &mockMessageRepo{}
	// 3 сохранено, limit=2: репозиторий вернул два последних, новые первыми
	repo.On("ListLatest", mock.Anything, "s-1", 2).Return([]*domain.ChatMessage{
		{ID: "c-3", SessionID: "s-1", UserMessage: "third", Timestamp: now},
		{ID: "c-2", SessionID: "s-1", UserMessage: "second", Timestamp: now.Add(-time.Minute)},
	}, nil)

	resp, err := NewService(repo, logger.NewNop()).History(context.Background(), "s-1", 2)

	require.NoError(t, err)
	assert.Equal(t, "s-1", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "second", resp.Messages[0].UserMessage)
	assert.Equal(t, "third", resp.Messages[1].UserMessage)
}

func TestService_History_LimitCapped(t *testing.T) {
	repo := &mockMessageRepo{}
	repo.On("ListLatest", mock.Anything, "s-1", domain.MaxChatHistoryLimit).Return([]*domain.ChatMessage{}, nil)

	resp, err := NewService(repo, logger.NewNop()).History(context.Background(), "s-1", 5000)

	require.NoError(t, err)
	assert.NotNil(t, resp.Messages)
	repo.AssertExpectations(t)
}

func TestService_History_InvalidLimit(t *testing.T) {
	repo := &mockMessageRepo{}

	_, err := NewService(repo, logger.NewNop()).History(context.Background(), "s-1", 0)

	assert.ErrorIs(t, err, ErrInvalidLimit)
	repo.AssertNotCalled(t, "ListLatest", mock.Anything, mock.Anything, mock.Anything)
}
