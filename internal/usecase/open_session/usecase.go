package open_session

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
)

// UseCase use case открытия сессии планирования
//
// Наполняет рабочий набор одной страницы календаря: ростер и элементы
// читаются в read-only транзакции одним консистентным снимком, дальше
// ядро работает только с памятью.
type UseCase struct {
	resourceRepo ResourceRepository
	itemRepo     ItemRepository
	registry     SessionRegistry
	txManager    TransactionManager
	defaultGrid  domain.TimeGrid
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// defaultGrid - сетка из конфигурации сервиса, применяется к сессиям
// без явных параметров сетки в запросе
func NewUseCase(
	resourceRepo ResourceRepository,
	itemRepo ItemRepository,
	registry SessionRegistry,
	txManager TransactionManager,
	defaultGrid domain.TimeGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		itemRepo:     itemRepo,
		registry:     registry,
		txManager:    txManager,
		defaultGrid:  defaultGrid,
		logger:       logger,
	}
}

// Execute выполняет use case открытия сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenSession: resources=%v, range=%s..%s",
		req.ResourceIDs, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OpenSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим сетку: переопределения запроса поверх дефолтов сервиса
	grid := uc.buildGrid(req.Grid)

	// 3. Читаем ростер и элементы одним снимком
	var (
		roster domain.Roster
		items  []*domain.ScheduleItem
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		if len(req.ResourceIDs) > 0 {
			roster, err = uc.resourceRepo.ListByIDs(txCtx, req.ResourceIDs)
		} else {
			roster, err = uc.resourceRepo.List(txCtx)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to load roster: %v", ErrInternal, err)
		}

		if len(roster) == 0 {
			return ErrNoResources
		}

		items, err = uc.itemRepo.ListByResourcesAndRange(txCtx, roster.IDs(), req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: failed to load items: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if err != ErrNoResources {
			uc.logger.Error("OpenSession: failed to load working set: %v", err)
		} else {
			uc.logger.Warn("OpenSession: no resources for ids=%v", req.ResourceIDs)
		}
		return nil, err
	}

	// 4. Собираем рабочий набор и регистрируем сессию
	set := workingset.New(roster, items)

	session, err := uc.registry.Create(grid, set, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("OpenSession: failed to register session: %v", err)
		return nil, fmt.Errorf("%w: failed to register session: %v", ErrInternal, err)
	}

	uc.logger.Info("OpenSession: session id=%s opened, %d resources, %d items",
		session.ID, len(roster), len(items))

	return &Response{
		SessionID: session.ID,
		Grid:      grid,
		Roster:    roster,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ItemCount: len(items),
	}, nil
}

// buildGrid строит сетку сессии из переопределений запроса
func (uc *UseCase) buildGrid(params *GridParams) domain.TimeGrid {
	if params == nil {
		return uc.defaultGrid
	}

	dayStart := uc.defaultGrid.StartOfDay
	if !params.DayStart.IsZero() {
		dayStart = params.DayStart
	}

	slotMinutes := params.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = uc.defaultGrid.SlotMinutes
	}

	slotCount := params.SlotCount
	if slotCount == 0 {
		slotCount = uc.defaultGrid.SlotCount
	}

	return domain.NewTimeGrid(dayStart, slotMinutes, slotCount)
}
