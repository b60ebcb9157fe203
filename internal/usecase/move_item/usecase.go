package move_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case перемещения элемента расписания (drag-and-drop)
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

// Execute выполняет use case перемещения элемента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveItem: session=%s, item=%d, newResource=%d, newStart=%s",
		req.SessionID, req.ItemID, req.NewResourceID, req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("MoveItem: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Применяем мутацию к рабочему набору (optimistic update)
	session.Lock()
	moved, snap, err := session.Set().Move(req.ItemID, req.NewResourceID, req.NewStartTime)
	session.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, workingset.ErrItemNotFound):
			uc.logger.Warn("MoveItem: item id=%d not found", req.ItemID)
			return nil, fmt.Errorf("%w: id=%d", ErrItemNotFound, req.ItemID)
		case errors.Is(err, workingset.ErrInvalidTarget):
			uc.logger.Warn("MoveItem: resource id=%d not in roster, item id=%d left in place",
				req.NewResourceID, req.ItemID)
			return nil, fmt.Errorf("%w: resource id=%d", ErrInvalidTarget, req.NewResourceID)
		case errors.Is(err, workingset.ErrInvalidTime):
			uc.logger.Warn("MoveItem: rejected by working set: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("MoveItem: unexpected working set error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// Перемещение в ту же позицию - no-op: в хранилище не ходим
	noop := snap.Before != nil &&
		snap.Before.ResourceID == moved.ResourceID &&
		snap.Before.StartTime == moved.StartTime

	if !noop {
		// 4. Сохраняем в хранилище - вне мьютекса сессии
		persisted, persistErr := uc.itemRepo.Upsert(ctx, moved)

		session.Lock()
		if persistErr != nil {
			// 5. Отказ хранилища: откатываем, если элемент с тех пор не мутировал
			if session.Set().Seq(req.ItemID) == snap.Seq {
				session.Set().Restore(snap)
			}
			session.Unlock()
			uc.logger.Error("MoveItem: persistence failed, local move rolled back: %v", persistErr)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, persistErr)
		}

		// 6. Успех: принимаем таймстампы хранилища
		session.Set().AdoptPersisted(req.ItemID, snap.Seq, persisted)
		session.Unlock()
		moved = persisted
	}

	// 7. Конфликтное состояние - предупреждение, не ошибка
	session.Lock()
	conflicts := conflict.FindConflicts(session.Set().ItemsOn(moved.Date)).IDs(moved.ID)
	session.Unlock()

	if len(conflicts) > 0 {
		uc.logger.Warn("MoveItem: item id=%d overlaps with %d item(s)", moved.ID, len(conflicts))
	}

	uc.logger.Info("MoveItem: successfully moved item id=%d", moved.ID)

	return &Response{
		Item:      moved,
		Conflicts: conflicts,
	}, nil
}
