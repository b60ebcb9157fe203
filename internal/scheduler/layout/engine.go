package layout

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/conflict"
)

// PositionedItem элемент с вычисленной геометрией внутри колонки ресурса
// Числа, а не виджеты: рендеринг остаётся за вызывающей стороной
type PositionedItem struct {
	Item      *domain.ScheduleItem
	TopOffset float64
	Height    float64
	Conflict  bool
}

// Column колонка одного ресурса в day view
type Column struct {
	Resource domain.Resource
	Items    []PositionedItem
}

// Layout вычисляет вертикальное смещение и высоту блока элемента
//
// Смещение: (минуты от начала дня / длительность слота), ограниченное
// [0, slotCount], умноженное на rowHeight. Высота: (длительность / слот),
// ограниченная снизу MinVisibleSlots (короткие элементы остаются читаемыми)
// и сверху slotCount. Ограничение чисто визуальное - хранимая длительность
// никогда не усекается.
func Layout(item *domain.ScheduleItem, grid domain.TimeGrid, rowHeight float64) (topOffset, height float64) {
	if rowHeight <= 0 {
		rowHeight = domain.DefaultRowHeight
	}

	topSlots := float64(grid.MinutesFromStart(item.StartTime)) / float64(grid.SlotMinutes)
	topSlots = clamp(topSlots, 0, float64(grid.SlotCount))

	heightSlots := float64(item.DurationMinutes) / float64(grid.SlotMinutes)
	heightSlots = clamp(heightSlots, domain.MinVisibleSlots, float64(grid.SlotCount))

	return topSlots * rowHeight, heightSlots * rowHeight
}

// Columns раскладывает элементы одного дня по колонкам ресурсов
// Колонки идут в порядке ростера; внутри колонки элементы отсортированы
// по времени начала. Элементы с ресурсом вне ростера пропускаются -
// колонка определяется позицией ресурса в явно переданном списке.
func Columns(
	roster domain.Roster,
	items []*domain.ScheduleItem,
	grid domain.TimeGrid,
	rowHeight float64,
	conflicts conflict.Set,
) []Column {
	byResource := make(map[int64][]*domain.ScheduleItem, len(roster))
	for _, item := range items {
		byResource[item.ResourceID] = append(byResource[item.ResourceID], item)
	}

	columns := make([]Column, len(roster))
	for i, res := range roster {
		group := byResource[res.ID]
		sort.Slice(group, func(a, b int) bool {
			sa, sb := group[a].StartMinutes(), group[b].StartMinutes()
			if sa != sb {
				return sa < sb
			}
			return group[a].ID < group[b].ID
		})

		positioned := make([]PositionedItem, len(group))
		for j, item := range group {
			top, height := Layout(item, grid, rowHeight)
			positioned[j] = PositionedItem{
				Item:      item,
				TopOffset: top,
				Height:    height,
				Conflict:  conflicts.Has(item.ID),
			}
		}

		columns[i] = Column{Resource: res, Items: positioned}
	}

	return columns
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
