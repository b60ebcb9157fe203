package get_day_layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/layout"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case раскладки day view
//
// Чистое чтение: пересчитывает конфликты и геометрию по текущему
// рабочему набору, ничего не мутируя и не обращаясь к хранилищу
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

// Execute выполняет use case раскладки дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	rowHeight := req.RowHeight
	if rowHeight == 0 {
		rowHeight = domain.DefaultRowHeight
	}
	if rowHeight < 0 {
		return nil, fmt.Errorf("%w: rowHeight must be positive", ErrInvalidInput)
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("GetDayLayout: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// 3. Считаем конфликты и раскладку под мьютексом сессии
	session.Lock()
	items := session.Set().ItemsOn(req.Date)
	conflicts := conflict.FindConflicts(items)
	columns := layout.Columns(session.Set().Resources(), items, session.Grid, rowHeight, conflicts)
	session.Unlock()

	uc.logger.Info("GetDayLayout: session=%s, date=%s, items=%d, conflicting=%d",
		req.SessionID, req.Date.Format(domain.DateFormat), len(items), conflicts.Count())

	return &Response{
		Date:      req.Date,
		Grid:      session.Grid,
		RowHeight: rowHeight,
		Columns:   columns,
	}, nil
}
