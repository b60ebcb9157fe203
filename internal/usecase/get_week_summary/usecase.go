package get_week_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/viewagg"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

const daysPerWeek = 7

// UseCase use case недельной сводки
// Возвращает счётчики (дата, ресурс) без пересчёта полной раскладки
type UseCase struct {
	sessionProvider SessionProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionProvider SessionProvider, logger Logger) *UseCase {
	return &UseCase{
		sessionProvider: sessionProvider,
		logger:          logger,
	}
}

// Execute выполняет use case недельной сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("GetWeekSummary: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	endDate := req.StartDate.AddDate(0, 0, daysPerWeek-1)

	// 3. Агрегируем под мьютексом сессии
	session.Lock()
	items := session.Set().Items()
	roster := session.Set().Resources()
	session.Unlock()

	counts := viewagg.CountsByResourceAndDate(items, req.StartDate, endDate)
	conflicts := conflict.FindConflicts(items)

	// Количество конфликтующих элементов на каждый день недели
	conflictingByDay := make(map[string]int)
	for _, item := range items {
		if conflicts.Has(item.ID) {
			conflictingByDay[item.DateKey()]++
		}
	}

	days := make([]Day, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		date := req.StartDate.AddDate(0, 0, i)
		dateKey := date.Format(domain.DateFormat)

		day := Day{
			Date:        dateKey,
			Conflicting: conflictingByDay[dateKey],
			PerResource: make([]ResourceCount, 0, len(roster)),
		}

		// Счётчики в порядке ростера; нулевые дни пропускаются
		for _, res := range roster {
			count := counts[viewagg.DayResource{Date: dateKey, ResourceID: res.ID}]
			if count == 0 {
				continue
			}
			day.PerResource = append(day.PerResource, ResourceCount{ResourceID: res.ID, Count: count})
			day.Total += count
		}

		days[i] = day
	}

	uc.logger.Info("GetWeekSummary: session=%s, week=%s, items=%d",
		req.SessionID, req.StartDate.Format(domain.DateFormat), len(items))

	return &Response{
		StartDate: req.StartDate,
		Days:      days,
	}, nil
}
