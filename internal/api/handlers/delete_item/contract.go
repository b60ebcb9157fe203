package delete_item

import (
	"context"

	deleteItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_item"
)

type DeleteItemUseCase interface {
	Execute(ctx context.Context, req *deleteItem.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
