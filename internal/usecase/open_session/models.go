package open_session

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// GridParams необязательные параметры сетки, переопределяющие дефолты сервиса
type GridParams struct {
	DayStart    types.TimeString
	SlotMinutes int
	SlotCount   int
}

// Request модель запроса на открытие сессии планирования
type Request struct {
	ResourceIDs []int64 // пустой список = весь ростер
	StartDate   time.Time
	EndDate     time.Time
	Grid        *GridParams
}

// Response модель ответа с открытой сессией
type Response struct {
	SessionID string
	Grid      domain.TimeGrid
	Roster    domain.Roster
	StartDate time.Time
	EndDate   time.Time
	ItemCount int
}
