package send_chat_message

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/integrations/completion"
	monasteryRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/monastery"
)

// UseCase чат с гидом по монастырям
type UseCase struct {
	monasteryRepo MonasteryRepository
	messageRepo   MessageRepository
	client        CompletionClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	monasteryRepo MonasteryRepository,
	messageRepo MessageRepository,
	client CompletionClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		monasteryRepo: monasteryRepo,
		messageRepo:   messageRepo,
		client:        client,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute отправляет сообщение гиду и сохраняет обмен репликами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Без ключа не ходим ни в хранилище, ни в сеть
	if !uc.client.Enabled() {
		uc.logger.Warn("SendChatMessage: completion client is not configured, session=%s", req.SessionID)
		return nil, ErrServiceUnavailable
	}

	// 2. Контекст монастыря
	monasteryContext, err := uc.loadContext(ctx, req.MonasteryID)
	if err != nil {
		return nil, err
	}

	// 3. Запрос к модели: ровно system + user
	messages := []completion.Message{
		{Role: completion.RoleSystem, Content: buildSystemPrompt(monasteryContext)},
		{Role: completion.RoleUser, Content: req.Message},
	}

	answer, err := uc.client.Complete(ctx, messages)
	if err != nil {
		if errors.Is(err, completion.ErrNotConfigured) {
			return nil, ErrServiceUnavailable
		}
		uc.logger.Error("SendChatMessage: completion failed, session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 4. Сохраняем обмен
	message := &domain.ChatMessage{
		ID:               uuid.NewString(),
		SessionID:        req.SessionID,
		UserMessage:      req.Message,
		AIResponse:       answer,
		MonasteryContext: req.MonasteryID,
		Timestamp:        uc.timeProvider.Now(),
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		uc.logger.Error("SendChatMessage: failed to save message, session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: save message: %v", ErrInternal, err)
	}

	uc.logger.Info("SendChatMessage: answered, session=%s, context=%t", req.SessionID, monasteryContext != "")
	return &Response{
		Response:         answer,
		SessionID:        req.SessionID,
		MonasteryContext: monasteryContext != "",
	}, nil
}

// loadContext рендерит блок контекста; неизвестный монастырь дает пустой контекст
func (uc *UseCase) loadContext(ctx context.Context, monasteryID *string) (string, error) {
	if monasteryID == nil || *monasteryID == "" {
		return "", nil
	}

	monastery, err := uc.monasteryRepo.GetByID(ctx, *monasteryID)
	if err != nil {
		if errors.Is(err, monasteryRepo.ErrMonasteryNotFound) {
			uc.logger.Warn("SendChatMessage: monastery id=%s not found, answering without context", *monasteryID)
			return "", nil
		}
		uc.logger.Error("SendChatMessage: failed to get monastery id=%s: %v", *monasteryID, err)
		return "", fmt.Errorf("%w: get monastery: %v", ErrInternal, err)
	}

	return renderMonasteryContext(monastery), nil
}
