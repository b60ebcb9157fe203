package create_item

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание элемента расписания
type Request struct {
	SessionID       string
	ResourceID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Label           string
	Subtitle        *string
}

// Response созданный элемент плюс конфликтное состояние
//
// Conflicts - id элементов, пересекающихся с созданным. Конфликты не
// блокируют создание (салоны осознанно делают двойные записи), но всегда
// видимы вызывающей стороне.
type Response struct {
	Item      *domain.ScheduleItem
	Conflicts []int64
}
