package workingset

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Snapshot снимок состояния элемента ДО мутации
//
// Возвращается каждой мутацией и позволяет выполнить точный откат
// (Restore) при отказе хранилища - без полной перезагрузки рабочего
// набора. Seq - значение счётчика мутаций элемента ПОСЛЕ мутации:
// откат и принятие ответа хранилища выполняются только если счётчик
// с тех пор не изменился, чтобы отставший ответ по сети не затёр
// более новое локальное состояние (last-applied-wins).
type Snapshot struct {
	ItemID int64
	Before *domain.ScheduleItem // nil, если элемент создан этой мутацией
	Seq    uint64
}

// WorkingSet рабочий набор элементов одной страницы календаря
// (день, неделя или видимые даты месяца)
//
// Это машина состояний за drag-and-drop, дублированием и удалением.
// Набор однопоточный: синхронизация - забота владельца (сессии).
// Мутации НЕ ходят в хранилище и НЕ запрещают конфликты: пересечения -
// предупреждение, а не ошибка, салоны осознанно делают двойные записи.
type WorkingSet struct {
	roster domain.Roster
	items  map[int64]*domain.ScheduleItem
	seqs   map[int64]uint64

	newLocalID func() int64
}

// Option настройка рабочего набора
type Option func(*WorkingSet)

// WithLocalIDGenerator подменяет генератор локальных id (для тестов)
func WithLocalIDGenerator(fn func() int64) Option {
	return func(ws *WorkingSet) {
		ws.newLocalID = fn
	}
}

// New создает рабочий набор из ростера и элементов, загруженных из хранилища
// Элементы копируются: внешние ссылки не могут мутировать набор в обход счётчиков
func New(roster domain.Roster, items []*domain.ScheduleItem, opts ...Option) *WorkingSet {
	ws := &WorkingSet{
		roster:     roster,
		items:      make(map[int64]*domain.ScheduleItem, len(items)),
		seqs:       make(map[int64]uint64, len(items)),
		newLocalID: defaultLocalID,
	}
	for _, opt := range opts {
		opt(ws)
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		ws.items[item.ID] = item.Clone()
	}

	return ws
}

// defaultLocalID генерирует локальный id для ещё не сохранённого элемента
// Отрицательный и производный от таймстампа: положительные id принадлежат хранилищу
func defaultLocalID() int64 {
	return -time.Now().UnixNano()
}

func (ws *WorkingSet) nextID() int64 {
	id := ws.newLocalID()
	for {
		if _, exists := ws.items[id]; !exists && id != 0 {
			return id
		}
		id--
	}
}

func (ws *WorkingSet) bump(id int64) uint64 {
	ws.seqs[id]++
	return ws.seqs[id]
}

// Create создает элемент и добавляет его в рабочий набор
//
// Валидируются только длительность, время и целевой ресурс. Конфликты по
// времени НЕ проверяются: двойная запись - допустимая бизнес-операция,
// она отображается предупреждением при пересчёте конфликтов.
func (ws *WorkingSet) Create(
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
	label string,
	subtitle *string,
) (*domain.ScheduleItem, Snapshot, error) {
	if durationMinutes <= 0 {
		return nil, Snapshot{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}
	if err := startTime.Validate(); err != nil {
		return nil, Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if !ws.roster.Contains(resourceID) {
		return nil, Snapshot{}, fmt.Errorf("%w: resource id=%d", ErrInvalidTarget, resourceID)
	}

	item := &domain.ScheduleItem{
		ID:              ws.nextID(),
		ResourceID:      resourceID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Label:           label,
		Subtitle:        subtitle,
	}
	ws.items[item.ID] = item

	snap := Snapshot{ItemID: item.ID, Before: nil, Seq: ws.bump(item.ID)}
	return item.Clone(), snap, nil
}

// Move примитив drag-and-drop: переназначает ресурс и время начала
//
// Принимает только уже квантованное время - сырые пиксельные координаты
// вызывающая сторона переводит через TimeGrid до вызова. Длительность не
// меняется. Конфликты не блокируют перемещение. Перемещение в ту же
// позицию - no-op: набор не меняется и счётчик не растёт.
func (ws *WorkingSet) Move(itemID, newResourceID int64, newStartTime types.TimeString) (*domain.ScheduleItem, Snapshot, error) {
	item, ok := ws.items[itemID]
	if !ok {
		return nil, Snapshot{}, fmt.Errorf("%w: id=%d", ErrItemNotFound, itemID)
	}
	if !ws.roster.Contains(newResourceID) {
		return nil, Snapshot{}, fmt.Errorf("%w: resource id=%d", ErrInvalidTarget, newResourceID)
	}
	if err := newStartTime.Validate(); err != nil {
		return nil, Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if item.ResourceID == newResourceID && item.StartTime == newStartTime {
		return item.Clone(), Snapshot{ItemID: itemID, Before: item.Clone(), Seq: ws.seqs[itemID]}, nil
	}

	before := item.Clone()
	item.ResourceID = newResourceID
	item.StartTime = newStartTime

	snap := Snapshot{ItemID: itemID, Before: before, Seq: ws.bump(itemID)}
	return item.Clone(), snap, nil
}

// Duplicate клонирует элемент с новым id
//
// Время начала дубликата - конец исходного элемента ("сразу после"):
// start + duration с заворачиванием через полночь. Если результат
// выходит за видимое окно дня, дубликат всё равно создаётся - обрезка
// это забота отображения, а не данных.
func (ws *WorkingSet) Duplicate(itemID int64) (*domain.ScheduleItem, Snapshot, error) {
	src, ok := ws.items[itemID]
	if !ok {
		return nil, Snapshot{}, fmt.Errorf("%w: id=%d", ErrItemNotFound, itemID)
	}

	start, err := src.StartTime.AddMinutes(src.DurationMinutes)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	dup := src.Clone()
	dup.ID = ws.nextID()
	dup.StartTime = start
	dup.CreatedAt = time.Time{}
	dup.UpdatedAt = time.Time{}
	ws.items[dup.ID] = dup

	snap := Snapshot{ItemID: dup.ID, Before: nil, Seq: ws.bump(dup.ID)}
	return dup.Clone(), snap, nil
}

// Delete удаляет элемент из рабочего набора
// Повторное удаление возвращает ErrItemNotFound; для вызывающей стороны
// это нефатальная ситуация (элемента и так нет)
func (ws *WorkingSet) Delete(itemID int64) (Snapshot, error) {
	item, ok := ws.items[itemID]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: id=%d", ErrItemNotFound, itemID)
	}

	before := item.Clone()
	delete(ws.items, itemID)

	// Запись счётчика сохраняется: guard отката должен видеть, если на
	// месте удалённого элемента появилось более новое состояние
	return Snapshot{ItemID: itemID, Before: before, Seq: ws.bump(itemID)}, nil
}

// Restore откатывает элемент к состоянию из снимка
// Вызывается при отказе хранилища; guard по счётчику - на вызывающей стороне
func (ws *WorkingSet) Restore(snap Snapshot) {
	if snap.Before == nil {
		delete(ws.items, snap.ItemID)
	} else {
		ws.items[snap.ItemID] = snap.Before.Clone()
	}
	ws.bump(snap.ItemID)
}

// Seq возвращает текущее значение счётчика мутаций элемента
func (ws *WorkingSet) Seq(itemID int64) uint64 {
	return ws.seqs[itemID]
}

// AdoptID заменяет локальный id на выданный хранилищем
// Принятие id - не пользовательская мутация: счётчик переносится без инкремента
func (ws *WorkingSet) AdoptID(localID, storeID int64) bool {
	item, ok := ws.items[localID]
	if !ok || localID == storeID {
		return ok
	}
	delete(ws.items, localID)
	item.ID = storeID
	ws.items[storeID] = item
	ws.seqs[storeID] = ws.seqs[localID]
	delete(ws.seqs, localID)
	return true
}

// AdoptPersisted принимает поля, проставленные хранилищем (таймстампы),
// только если элемент не мутировал с момента seq - отставший ответ
// не должен затирать более новое локальное состояние
func (ws *WorkingSet) AdoptPersisted(itemID int64, seq uint64, persisted *domain.ScheduleItem) bool {
	item, ok := ws.items[itemID]
	if !ok || ws.seqs[itemID] != seq {
		return false
	}
	item.CreatedAt = persisted.CreatedAt
	item.UpdatedAt = persisted.UpdatedAt
	return true
}

// Item возвращает копию элемента по id
func (ws *WorkingSet) Item(itemID int64) (*domain.ScheduleItem, bool) {
	item, ok := ws.items[itemID]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Items возвращает копии всех элементов, детерминированно отсортированные
// по (дата, ресурс, время начала, id)
func (ws *WorkingSet) Items() []*domain.ScheduleItem {
	items := make([]*domain.ScheduleItem, 0, len(ws.items))
	for _, item := range ws.items {
		items = append(items, item.Clone())
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		if items[i].ResourceID != items[j].ResourceID {
			return items[i].ResourceID < items[j].ResourceID
		}
		si, sj := items[i].StartMinutes(), items[j].StartMinutes()
		if si != sj {
			return si < sj
		}
		return items[i].ID < items[j].ID
	})

	return items
}

// ItemsOn возвращает копии элементов указанной даты
func (ws *WorkingSet) ItemsOn(date time.Time) []*domain.ScheduleItem {
	items := make([]*domain.ScheduleItem, 0)
	for _, item := range ws.items {
		if item.SameDay(date) {
			items = append(items, item.Clone())
		}
	}
	return items
}

// Resources возвращает ростер сессии
func (ws *WorkingSet) Resources() domain.Roster {
	return ws.roster
}

// Len возвращает количество элементов в наборе
func (ws *WorkingSet) Len() int {
	return len(ws.items)
}
