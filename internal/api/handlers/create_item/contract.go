package create_item

import (
	"context"

	createItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_item"
)

type CreateItemUseCase interface {
	Execute(ctx context.Context, req *createItem.Request) (*createItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
