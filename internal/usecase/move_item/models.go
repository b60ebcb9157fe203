package move_item

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на перемещение элемента расписания
//
// NewStartTime - уже квантованное время: сырые координаты перетаскивания
// вызывающая сторона переводит через TimeGrid до обращения к сервису.
type Request struct {
	SessionID     string
	ItemID        int64
	NewResourceID int64
	NewStartTime  types.TimeString
}

// Response перемещённый элемент плюс конфликтное состояние
type Response struct {
	Item      *domain.ScheduleItem
	Conflicts []int64
}
