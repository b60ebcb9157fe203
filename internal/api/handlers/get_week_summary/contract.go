package get_week_summary

import (
	"context"

	getWeekSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_summary"
)

type GetWeekSummaryUseCase interface {
	Execute(ctx context.Context, req *getWeekSummary.Request) (*getWeekSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
