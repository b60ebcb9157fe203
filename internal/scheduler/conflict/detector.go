package conflict

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Set результат поиска конфликтов: id элемента -> множество конфликтующих id
type Set map[int64]map[int64]struct{}

// Has возвращает true, если элемент участвует хотя бы в одном конфликте
func (s Set) Has(id int64) bool {
	return len(s[id]) > 0
}

// IDs возвращает отсортированный список id, конфликтующих с элементом
func (s Set) IDs(id int64) []int64 {
	peers := s[id]
	if len(peers) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(peers))
	for peer := range peers {
		ids = append(ids, peer)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count возвращает количество элементов, участвующих в конфликтах
func (s Set) Count() int {
	return len(s)
}

func (s Set) add(a, b int64) {
	if s[a] == nil {
		s[a] = make(map[int64]struct{})
	}
	if s[b] == nil {
		s[b] = make(map[int64]struct{})
	}
	s[a][b] = struct{}{}
	s[b][a] = struct{}{}
}

// groupKey элементы могут конфликтовать только внутри одной пары (ресурс, дата)
type groupKey struct {
	resourceID int64
	dateKey    string
}

// FindConflicts находит все попарные пересечения интервалов
//
// Элементы группируются по (ресурс, дата); внутри группы выполняется
// однопроходный sweep по отсортированным временам начала с поддержанием
// списка "активных" интервалов - O(n log n) на группу вместо O(n^2).
// Интервалы полуоткрытые: касание границ ("10:00" заканчивается там, где
// начинается "10:00") пересечением НЕ считается.
//
// Детектор чистый и не хранит состояния: вызывающая сторона пересчитывает
// конфликты после каждой мутации ресурса, даты, времени или длительности.
// Элементы с нулевой или отрицательной длительностью не конфликтуют ни с чем.
func FindConflicts(items []*domain.ScheduleItem) Set {
	groups := make(map[groupKey][]*domain.ScheduleItem)
	for _, item := range items {
		if item == nil || item.DurationMinutes <= 0 {
			continue
		}
		key := groupKey{resourceID: item.ResourceID, dateKey: item.DateKey()}
		groups[key] = append(groups[key], item)
	}

	result := make(Set)

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			si, sj := group[i].StartMinutes(), group[j].StartMinutes()
			if si != sj {
				return si < sj
			}
			return group[i].ID < group[j].ID
		})

		// Активные интервалы - те, чей конец ещё не пройден текущим началом
		active := group[:0:0]
		for _, item := range group {
			start := item.StartMinutes()

			kept := active[:0]
			for _, open := range active {
				if open.EndMinutes() > start {
					kept = append(kept, open)
				}
			}
			active = kept

			for _, open := range active {
				result.add(open.ID, item.ID)
			}
			active = append(active, item)
		}
	}

	return result
}
