package chat

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/chat/models"
)

// Service сервис истории чата
type Service struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса истории чата
func NewService(messageRepo MessageRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// History последние limit сообщений сессии в хронологическом порядке
// limit больше MaxChatHistoryLimit обрезается
func (s *Service) History(ctx context.Context, sessionID string, limit int) (*models.ChatHistoryResponse, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit=%d", ErrInvalidLimit, limit)
	}
	if limit > domain.MaxChatHistoryLimit {
		limit = domain.MaxChatHistoryLimit
	}

	latest, err := s.messageRepo.ListLatest(ctx, sessionID, limit)
	if err != nil {
		s.logger.Error("History: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	// Репозиторий отдает новые первыми
	messages := make([]models.ChatMessageResponse, 0, len(latest))
	for i := len(latest) - 1; i >= 0; i-- {
		messages = append(messages, models.FromDomainMessage(latest[i]))
	}

	return &models.ChatHistoryResponse{
		Messages:  messages,
		SessionID: sessionID,
	}, nil
}
