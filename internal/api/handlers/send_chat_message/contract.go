package send_chat_message

import (
	"context"

	sendChatMessage "github.com/m04kA/SMC-HeritageService/internal/usecase/send_chat_message"
)

type SendChatMessageUseCase interface {
	Execute(ctx context.Context, req *sendChatMessage.Request) (*sendChatMessage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
