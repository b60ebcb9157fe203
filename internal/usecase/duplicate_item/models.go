package duplicate_item

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Request модель запроса на дублирование элемента расписания
type Request struct {
	SessionID string
	ItemID    int64
}

// Response созданная копия плюс конфликтное состояние
//
// Копия начинается сразу после исходного элемента (start + duration,
// с заворачиванием через полночь), поэтому при ненулевой длительности
// она не конфликтует с оригиналом, но может конфликтовать с соседями.
type Response struct {
	Item      *domain.ScheduleItem
	Conflicts []int64
}
