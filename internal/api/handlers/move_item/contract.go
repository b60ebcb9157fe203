package move_item

import (
	"context"

	moveItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/move_item"
)

type MoveItemUseCase interface {
	Execute(ctx context.Context, req *moveItem.Request) (*moveItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
