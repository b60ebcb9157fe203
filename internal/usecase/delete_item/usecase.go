package delete_item

import (
	"context"
	"errors"
	"fmt"

	itemstorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/item"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
)

// UseCase use case удаления элемента расписания
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

// Execute выполняет use case удаления элемента
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("DeleteItem: session=%s, item=%d", req.SessionID, req.ItemID)

	// 1. Валидация входных данных
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.ItemID == 0 {
		return fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	// 2. Получаем сессию
	session, err := uc.sessionProvider.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("DeleteItem: session id=%s not found", req.SessionID)
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Применяем мутацию к рабочему набору (optimistic update)
	session.Lock()
	snap, err := session.Set().Delete(req.ItemID)
	session.Unlock()

	if err != nil {
		if errors.Is(err, workingset.ErrItemNotFound) {
			// Повторное удаление - нефатально: элемента и так нет
			uc.logger.Warn("DeleteItem: item id=%d already absent", req.ItemID)
			return fmt.Errorf("%w: id=%d", ErrItemNotFound, req.ItemID)
		}
		uc.logger.Error("DeleteItem: unexpected working set error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Локальный элемент хранилище ещё не видело - удалять там нечего
	if !snap.Before.IsPersisted() {
		uc.logger.Info("DeleteItem: item id=%d was local-only, store untouched", req.ItemID)
		return nil
	}

	// 4. Удаляем из хранилища - вне мьютекса сессии
	persistErr := uc.itemRepo.Delete(ctx, req.ItemID)

	// Хранилище уже не знает элемент - удаление идемпотентно, это успех
	if persistErr != nil && errors.Is(persistErr, itemstorage.ErrItemNotFound) {
		uc.logger.Warn("DeleteItem: item id=%d already absent in store", req.ItemID)
		persistErr = nil
	}

	if persistErr != nil {
		// 5. Отказ хранилища: восстанавливаем элемент, если на его месте
		// не появилось более новое состояние
		session.Lock()
		if session.Set().Seq(req.ItemID) == snap.Seq {
			session.Set().Restore(snap)
		}
		session.Unlock()
		uc.logger.Error("DeleteItem: persistence failed, local delete rolled back: %v", persistErr)
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, persistErr)
	}

	uc.logger.Info("DeleteItem: successfully deleted item id=%d", req.ItemID)
	return nil
}
