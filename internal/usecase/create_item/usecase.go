package create_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case создания элемента расписания
//
// Оптимистичный протокол: мутация применяется к рабочему набору сразу
// (UI отвечает без задержки), затем сохраняется в хранилище. При отказе
// хранилища локальная мутация откатывается по снимку - точно, без
// полной перезагрузки. Снимок хранит счётчик мутаций: отставший ответ
// хранилища никогда не затирает более новое локальное состояние.
type UseCase struct {
	sessionProvider SessionProvider
	itemRepo        ItemRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionProvider SessionProvider, itemRepo ItemRepository, logger Logger) *UseCase {
	return &UseCase{
		sessionProvider: sessionProvider,
		itemRepo:        itemRepo,
		logger:          logger,
	}
}

// Execute выполняет use case создания элемента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateItem: session=%s, resource=%d, date=%s, time=%s, duration=%d",
		req.SessionID, req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("CreateItem: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Применяем мутацию к рабочему набору (optimistic update)
	session.Lock()
	created, snap, err := session.Set().Create(
		req.ResourceID,
		req.Date,
		req.StartTime,
		req.DurationMinutes,
		req.Label,
		req.Subtitle,
	)
	session.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, workingset.ErrInvalidTarget):
			uc.logger.Warn("CreateItem: resource id=%d not in roster", req.ResourceID)
			return nil, fmt.Errorf("%w: resource id=%d", ErrInvalidTarget, req.ResourceID)
		case errors.Is(err, workingset.ErrInvalidDuration), errors.Is(err, workingset.ErrInvalidTime):
			uc.logger.Warn("CreateItem: rejected by working set: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateItem: unexpected working set error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Сохраняем в хранилище - вне мьютекса сессии
	persisted, persistErr := uc.itemRepo.Upsert(ctx, created)

	session.Lock()
	defer session.Unlock()

	// 5. Отказ хранилища: откатываем локальную мутацию, если элемент
	// с тех пор не мутировал (guard по счётчику)
	if persistErr != nil {
		if session.Set().Seq(created.ID) == snap.Seq {
			session.Set().Restore(snap)
		}
		uc.logger.Error("CreateItem: persistence failed, local create rolled back: %v", persistErr)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, persistErr)
	}

	// 6. Успех: принимаем id хранилища и таймстампы
	session.Set().AdoptID(created.ID, persisted.ID)
	session.Set().AdoptPersisted(persisted.ID, snap.Seq, persisted)

	// 7. Конфликтное состояние - предупреждение, не ошибка
	conflicts := conflict.FindConflicts(session.Set().ItemsOn(created.Date)).IDs(persisted.ID)
	if len(conflicts) > 0 {
		uc.logger.Warn("CreateItem: item id=%d overlaps with %d item(s)", persisted.ID, len(conflicts))
	}

	uc.logger.Info("CreateItem: successfully created item id=%d", persisted.ID)

	return &Response{
		Item:      persisted,
		Conflicts: conflicts,
	}, nil
}
