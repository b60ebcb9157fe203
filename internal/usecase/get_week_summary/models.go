package get_week_summary

import (
	"time"
)

// Request модель запроса недельной сводки
type Request struct {
	SessionID string
	StartDate time.Time // первый день недели
}

// ResourceCount количество элементов ресурса за день
type ResourceCount struct {
	ResourceID int64
	Count      int
}

// Day сводка одного дня недели
type Day struct {
	Date        string // YYYY-MM-DD
	Total       int
	Conflicting int // количество элементов дня, участвующих в конфликтах
	PerResource []ResourceCount
}

// Response недельная сводка: семь дней счётчиков без полной раскладки
type Response struct {
	StartDate time.Time
	Days      []Day
}
