package open_session

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidDateRange)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > domain.MaxSessionDays {
		return fmt.Errorf("%w: range of %d days exceeds the maximum of %d", ErrInvalidDateRange, days, domain.MaxSessionDays)
	}

	for _, id := range req.ResourceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: resource id must be positive, got %d", ErrInvalidInput, id)
		}
	}

	if req.Grid != nil {
		if err := validateGridParams(req.Grid); err != nil {
			return err
		}
	}

	return nil
}

// validateGridParams валидирует переопределённые параметры сетки
func validateGridParams(grid *GridParams) error {
	if !grid.DayStart.IsZero() {
		if err := grid.DayStart.Validate(); err != nil {
			return fmt.Errorf("%w: invalid grid dayStart: %v", ErrInvalidInput, err)
		}
	}

	if grid.SlotMinutes != 0 && (grid.SlotMinutes < domain.MinSlotMinutes || grid.SlotMinutes > domain.MaxSlotMinutes) {
		return fmt.Errorf("%w: slotMinutes must be within [%d, %d]",
			ErrInvalidInput, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}

	if grid.SlotCount != 0 && (grid.SlotCount < 1 || grid.SlotCount > domain.MaxSlotCount) {
		return fmt.Errorf("%w: slotCount must be within [1, %d]", ErrInvalidInput, domain.MaxSlotCount)
	}

	return nil
}
