package get_day_layout

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/layout"
)

// Request модель запроса раскладки дня
type Request struct {
	SessionID string
	Date      time.Time
	RowHeight float64 // 0 = высота строки по умолчанию
}

// Response готовая к отрисовке раскладка дня: по колонке на ресурс,
// внутри колонки элементы с геометрией и флагом конфликта
type Response struct {
	Date      time.Time
	Grid      domain.TimeGrid
	RowHeight float64
	Columns   []layout.Column
}
