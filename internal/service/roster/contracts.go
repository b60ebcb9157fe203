package roster

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context) (domain.Roster, error)
	ListByIDs(ctx context.Context, ids []int64) (domain.Roster, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
