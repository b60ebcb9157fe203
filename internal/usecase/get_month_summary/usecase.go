package get_month_summary

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/viewagg"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case месячной сводки
//
// Отдает счётчики (дата, ресурс) для мини-индикаторов сетки месяца и,
// при тапе по ячейке, отсортированный список элементов этой даты
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

// Execute выполняет use case месячной сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("GetMonthSummary: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// 3. Агрегируем под мьютексом сессии
	session.Lock()
	items := session.Set().Items()
	session.Unlock()

	counts := viewagg.CountsByResourceAndDate(items, firstDay, lastDay)

	result := make([]DayResourceCount, 0, len(counts))
	for key, count := range counts {
		result = append(result, DayResourceCount{
			Date:       key.Date,
			ResourceID: key.ResourceID,
			Count:      count,
		})
	}

	// Детерминированный порядок: по дате, затем по ресурсу
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ResourceID < result[j].ResourceID
	})

	response := &Response{
		Year:   req.Year,
		Month:  req.Month,
		Counts: result,
	}

	// 4. Peek по тапнутой дате
	if req.PeekDate != nil {
		response.Peek = &Peek{
			Date:  req.PeekDate.Format(domain.DateFormat),
			Items: viewagg.ItemsOnDate(items, *req.PeekDate),
		}
	}

	uc.logger.Info("GetMonthSummary: session=%s, month=%d-%02d, days with items=%d",
		req.SessionID, req.Year, req.Month, len(result))

	return response, nil
}
