package chat

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_ListLatest(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "session_id", "user_message", "ai_response", "monastery_context", "created_at"}).
		AddRow("c-2", "s-1", "second", "answer 2", "m-1", now).
		AddRow("c-1", "s-1", "first", "answer 1", nil, now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, user_message, ai_response, monastery_context, created_at " +
		"FROM chat_messages WHERE session_id = $1 ORDER BY created_at DESC, id DESC LIMIT 2")).
		WithArgs("s-1").
		WillReturnRows(rows)

	messages, err := repo.ListLatest(context.Background(), "s-1", 2)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].UserMessage)
	assert.Nil(t, messages[1].MonasteryContext)
}

func TestRepository_Create_Error(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO chat_messages").WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &domain.ChatMessage{ID: "c-1", SessionID: "s-1"})

	assert.ErrorIs(t, err, ErrRepository)
}
