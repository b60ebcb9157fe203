package open_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context) (domain.Roster, error)
	ListByIDs(ctx context.Context, ids []int64) (domain.Roster, error)
}

// ItemRepository интерфейс репозитория элементов расписания
type ItemRepository interface {
	ListByResourcesAndRange(ctx context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.ScheduleItem, error)
}

// SessionRegistry интерфейс реестра сессий
type SessionRegistry interface {
	Create(grid domain.TimeGrid, set *workingset.WorkingSet, startDate, endDate time.Time) (*sessions.Session, error)
}

// TransactionManager интерфейс для управления транзакциями
// Ростер и элементы читаются одним консистентным снимком
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
