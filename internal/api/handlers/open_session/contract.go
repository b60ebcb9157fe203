package open_session

import (
	"context"

	openSession "github.com/m04kA/SMC-ScheduleService/internal/usecase/open_session"
)

type OpenSessionUseCase interface {
	Execute(ctx context.Context, req *openSession.Request) (*openSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
