package delete_item

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// SessionProvider интерфейс доступа к активным сессиям
type SessionProvider interface {
	Get(id string) (*sessions.Session, error)
}

// ItemRepository интерфейс репозитория элементов расписания
type ItemRepository interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
