package get_month_summary

import (
	"context"

	getMonthSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_summary"
)

type GetMonthSummaryUseCase interface {
	Execute(ctx context.Context, req *getMonthSummary.Request) (*getMonthSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
