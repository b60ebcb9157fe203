package duplicate_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case дублирования элемента расписания
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

// Execute выполняет use case дублирования элемента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DuplicateItem: session=%s, item=%d", req.SessionID, req.ItemID)

	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.ItemID == 0 {
		return nil, fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("DuplicateItem: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Применяем мутацию к рабочему набору (optimistic update)
	session.Lock()
	dup, snap, err := session.Set().Duplicate(req.ItemID)
	session.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, workingset.ErrItemNotFound):
			uc.logger.Warn("DuplicateItem: item id=%d not found", req.ItemID)
			return nil, fmt.Errorf("%w: id=%d", ErrItemNotFound, req.ItemID)
		case errors.Is(err, workingset.ErrInvalidTime):
			uc.logger.Warn("DuplicateItem: rejected by working set: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("DuplicateItem: unexpected working set error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Сохраняем в хранилище - вне мьютекса сессии
	persisted, persistErr := uc.itemRepo.Upsert(ctx, dup)

	session.Lock()
	defer session.Unlock()

	// 5. Отказ хранилища: убираем локальную копию, если она с тех пор не мутировала
	if persistErr != nil {
		if session.Set().Seq(dup.ID) == snap.Seq {
			session.Set().Restore(snap)
		}
		uc.logger.Error("DuplicateItem: persistence failed, local copy removed: %v", persistErr)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, persistErr)
	}

	// 6. Успех: принимаем id хранилища и таймстампы
	session.Set().AdoptID(dup.ID, persisted.ID)
	session.Set().AdoptPersisted(persisted.ID, snap.Seq, persisted)

	// 7. Конфликтное состояние - предупреждение, не ошибка
	conflicts := conflict.FindConflicts(session.Set().ItemsOn(dup.Date)).IDs(persisted.ID)
	if len(conflicts) > 0 {
		uc.logger.Warn("DuplicateItem: item id=%d overlaps with %d item(s)", persisted.ID, len(conflicts))
	}

	uc.logger.Info("DuplicateItem: successfully duplicated item id=%d -> id=%d", req.ItemID, persisted.ID)

	return &Response{
		Item:      persisted,
		Conflicts: conflicts,
	}, nil
}
