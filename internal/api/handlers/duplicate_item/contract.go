package duplicate_item

import (
	"context"

	duplicateItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_item"
)

type DuplicateItemUseCase interface {
	Execute(ctx context.Context, req *duplicateItem.Request) (*duplicateItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
