package initialize_monasteries

import (
	"context"

	initializeMonasteries "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_monasteries"
)

type InitializeMonasteriesUseCase interface {
	Execute(ctx context.Context, req *initializeMonasteries.Request) (*initializeMonasteries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
