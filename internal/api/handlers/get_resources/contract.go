package get_resources

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type RosterService interface {
	List(ctx context.Context) (domain.Roster, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
