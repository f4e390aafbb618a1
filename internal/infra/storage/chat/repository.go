package chat

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

var schema = collection.Schema[domain.ChatMessage]{
	Table:   "chat_messages",
	Columns: []string{"id", "session_id", "user_message", "ai_response", "monastery_context", "created_at"},
	Values: func(m *domain.ChatMessage) ([]interface{}, error) {
		return []interface{}{m.ID, m.SessionID, m.UserMessage, m.AIResponse, m.MonasteryContext, m.Timestamp}, nil
	},
	Scan: func(row collection.RowScanner) (*domain.ChatMessage, error) {
		var m domain.ChatMessage
		if err := row.Scan(&m.ID, &m.SessionID, &m.UserMessage, &m.AIResponse, &m.MonasteryContext, &m.Timestamp); err != nil {
			return nil, err
		}
		return &m, nil
	},
}

// Repository журнал сообщений чата (только добавление)
type Repository struct {
	coll *collection.Collection[domain.ChatMessage]
}

// NewRepository создает новый экземпляр репозитория чата
func NewRepository(db DBExecutor) *Repository {
	return &Repository{coll: collection.New(db, schema)}
}

// Create сохраняет обмен репликами
func (r *Repository) Create(ctx context.Context, message *domain.ChatMessage) error {
	if err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("%w: Create - insert message: %v", ErrRepository, err)
	}
	return nil
}

// ListLatest возвращает не более limit последних сообщений сессии, новые первыми
func (r *Repository) ListLatest(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	messages, err := r.coll.Find(ctx, collection.Eq("session_id", sessionID), collection.FindOptions{
		Sort:  []string{"created_at DESC", "id DESC"},
		Limit: uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ListLatest - find messages: %v", ErrRepository, err)
	}
	return messages, nil
}
