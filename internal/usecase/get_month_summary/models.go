package get_month_summary

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса месячной сводки
type Request struct {
	SessionID string
	Year      int
	Month     time.Month
	PeekDate  *time.Time // дата, по которой тапнули в сетке месяца (опционально)
}

// DayResourceCount счётчик элементов пары (дата, ресурс) для мини-индикаторов
type DayResourceCount struct {
	Date       string // YYYY-MM-DD
	ResourceID int64
	Count      int
}

// Peek отсортированный список элементов тапнутой даты (day-detail popover)
type Peek struct {
	Date  string
	Items []*domain.ScheduleItem
}

// Response месячная сводка
type Response struct {
	Year   int
	Month  time.Month
	Counts []DayResourceCount
	Peek   *Peek
}
