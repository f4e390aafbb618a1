package initialize_cultural_events

import (
	"context"

	initializeEvents "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_cultural_events"
)

type InitializeCulturalEventsUseCase interface {
	Execute(ctx context.Context, req *initializeEvents.Request) (*initializeEvents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
