package viewagg

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DayResource ключ агрегации: (дата, ресурс)
type DayResource struct {
	Date       string // YYYY-MM-DD
	ResourceID int64
}

// CountsByResourceAndDate считает количество элементов на каждую пару
// (дата, ресурс) в диапазоне [from, to] включительно
//
// Используется month view для индикаторов занятости без пересчёта полной
// раскладки. Чистая проекция: ничего не мутирует и не ходит в хранилище.
func CountsByResourceAndDate(items []*domain.ScheduleItem, from, to time.Time) map[DayResource]int {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)

	counts := make(map[DayResource]int)
	for _, item := range items {
		day := truncateToDay(item.Date)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		key := DayResource{Date: item.DateKey(), ResourceID: item.ResourceID}
		counts[key]++
	}

	return counts
}

// ItemsOnDate возвращает элементы указанной даты, отсортированные по
// (ресурс, время начала). Используется попапом day-detail при тапе по
// ячейке месяца.
func ItemsOnDate(items []*domain.ScheduleItem, date time.Time) []*domain.ScheduleItem {
	result := make([]*domain.ScheduleItem, 0)
	for _, item := range items {
		if item.SameDay(date) {
			result = append(result, item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ResourceID != result[j].ResourceID {
			return result[i].ResourceID < result[j].ResourceID
		}
		si, sj := result[i].StartMinutes(), result[j].StartMinutes()
		if si != sj {
			return si < sj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
