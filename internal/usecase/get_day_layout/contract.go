package get_day_layout

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// SessionProvider интерфейс доступа к активным сессиям
type SessionProvider interface {
	Get(id string) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
