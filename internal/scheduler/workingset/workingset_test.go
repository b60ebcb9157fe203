package workingset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var day = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func testRoster() domain.Roster {
	return domain.Roster{
		{ID: 10, Name: "Анна"},
		{ID: 20, Name: "Мария"},
	}
}

// sequentialIDs детерминированный генератор локальных id для тестов
func sequentialIDs() func() int64 {
	next := int64(-1)
	return func() int64 {
		id := next
		next--
		return id
	}
}

func newSet(t *testing.T, items ...*domain.ScheduleItem) *WorkingSet {
	t.Helper()
	return New(testRoster(), items, WithLocalIDGenerator(sequentialIDs()))
}

func persisted(id, resourceID int64, start string, duration int) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:              id,
		ResourceID:      resourceID,
		Date:            day,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Label:           "клиент",
	}
}

func TestWorkingSet_Create(t *testing.T) {
	set := newSet(t)

	created, snap, err := set.Create(10, day, "10:00", 60, "Ирина", ptr.Ptr("стрижка"))
	require.NoError(t, err)

	assert.Equal(t, int64(-1), created.ID)
	assert.False(t, created.IsPersisted())
	assert.Equal(t, created.ID, snap.ItemID)
	assert.Nil(t, snap.Before)
	assert.Equal(t, uint64(1), snap.Seq)
	assert.Equal(t, 1, set.Len())
}

func TestWorkingSet_Create_Validation(t *testing.T) {
	set := newSet(t)

	_, _, err := set.Create(10, day, "10:00", 0, "", nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, _, err = set.Create(10, day, "10:00", -30, "", nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, _, err = set.Create(10, day, "25:99", 30, "", nil)
	assert.ErrorIs(t, err, ErrInvalidTime)

	// ресурс вне ростера - элемент не появляется даже частично
	_, _, err = set.Create(99, day, "10:00", 30, "", nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Equal(t, 0, set.Len())
}

func TestWorkingSet_Create_ConflictsDoNotBlock(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	// точное наложение на существующий элемент - создание проходит
	created, _, err := set.Create(10, day, "10:00", 60, "двойная запись", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.NotEqual(t, int64(1), created.ID)
}

func TestWorkingSet_Move(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	moved, snap, err := set.Move(1, 20, "14:30")
	require.NoError(t, err)

	assert.Equal(t, int64(20), moved.ResourceID)
	assert.Equal(t, types.TimeString("14:30"), moved.StartTime)
	assert.Equal(t, 60, moved.DurationMinutes)

	require.NotNil(t, snap.Before)
	assert.Equal(t, int64(10), snap.Before.ResourceID)
	assert.Equal(t, types.TimeString("10:00"), snap.Before.StartTime)
	assert.Equal(t, uint64(1), snap.Seq)
}

func TestWorkingSet_Move_SameTargetIsNoop(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	moved, snap, err := set.Move(1, 10, "10:00")
	require.NoError(t, err)

	assert.Equal(t, int64(10), moved.ResourceID)
	// счётчик не растёт: мутации не было
	assert.Equal(t, uint64(0), snap.Seq)
	assert.Equal(t, uint64(0), set.Seq(1))
}

func TestWorkingSet_Move_InvalidTargetLeavesItemInPlace(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	_, _, err := set.Move(1, 99, "14:00")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	item, ok := set.Item(1)
	require.True(t, ok)
	assert.Equal(t, int64(10), item.ResourceID)
	assert.Equal(t, types.TimeString("10:00"), item.StartTime)
}

func TestWorkingSet_Move_NotFound(t *testing.T) {
	set := newSet(t)

	_, _, err := set.Move(404, 10, "10:00")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestWorkingSet_Duplicate(t *testing.T) {
	src := persisted(1, 10, "10:00", 90)
	src.Subtitle = ptr.Ptr("стрижка")
	set := newSet(t, src)

	dup, snap, err := set.Duplicate(1)
	require.NoError(t, err)

	// дубликат начинается сразу после исходного
	assert.Equal(t, types.TimeString("11:30"), dup.StartTime)
	assert.Equal(t, int64(10), dup.ResourceID)
	assert.Equal(t, 90, dup.DurationMinutes)
	assert.Equal(t, "клиент", dup.Label)
	assert.Equal(t, "стрижка", *dup.Subtitle)
	assert.False(t, dup.IsPersisted())
	assert.True(t, dup.CreatedAt.IsZero())
	assert.Nil(t, snap.Before)

	// дубликат не конфликтует с оригиналом (касание концов), Len вырос
	assert.Equal(t, 2, set.Len())
}

func TestWorkingSet_Duplicate_WrapsMidnight(t *testing.T) {
	set := newSet(t, persisted(1, 10, "23:30", 60))

	dup, _, err := set.Duplicate(1)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("00:30"), dup.StartTime)
}

func TestWorkingSet_Delete_And_Restore(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	snap, err := set.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	require.NotNil(t, snap.Before)

	// повторное удаление - ErrItemNotFound
	_, err = set.Delete(1)
	assert.ErrorIs(t, err, ErrItemNotFound)

	// откат возвращает элемент в прежнем виде
	set.Restore(snap)
	item, ok := set.Item(1)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), item.StartTime)
	assert.Equal(t, 1, set.Len())
}

func TestWorkingSet_Restore_RemovesCreatedItem(t *testing.T) {
	set := newSet(t)

	created, snap, err := set.Create(10, day, "10:00", 60, "", nil)
	require.NoError(t, err)

	// откат создания (Before == nil) удаляет элемент
	set.Restore(snap)
	_, ok := set.Item(created.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, set.Len())
}

func TestWorkingSet_DuplicateThenDeleteRoundTrip(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	dup, _, err := set.Duplicate(1)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	_, err = set.Delete(dup.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	_, ok := set.Item(1)
	assert.True(t, ok)
}

func TestWorkingSet_SeqGuard(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	_, snap1, err := set.Move(1, 20, "11:00")
	require.NoError(t, err)

	// вторая мутация до прихода ответа хранилища на первую
	_, _, err = set.Move(1, 10, "12:00")
	require.NoError(t, err)

	// guard: счётчик ушёл вперёд, отставший откат не должен применяться
	assert.NotEqual(t, snap1.Seq, set.Seq(1))
}

func TestWorkingSet_AdoptID(t *testing.T) {
	set := newSet(t)

	created, snap, err := set.Create(10, day, "10:00", 60, "", nil)
	require.NoError(t, err)

	ok := set.AdoptID(created.ID, 42)
	require.True(t, ok)

	_, found := set.Item(created.ID)
	assert.False(t, found)

	adopted, found := set.Item(42)
	require.True(t, found)
	assert.Equal(t, int64(42), adopted.ID)

	// счётчик переносится без инкремента: принятие id - не мутация
	assert.Equal(t, snap.Seq, set.Seq(42))
	assert.Equal(t, uint64(0), set.Seq(created.ID))
}

func TestWorkingSet_AdoptPersisted_StaleGuard(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	_, snap, err := set.Move(1, 20, "11:00")
	require.NoError(t, err)

	stamped := persisted(1, 20, "11:00", 60)
	stamped.UpdatedAt = time.Now()

	// свежий ответ принимается
	assert.True(t, set.AdoptPersisted(1, snap.Seq, stamped))
	item, _ := set.Item(1)
	assert.False(t, item.UpdatedAt.IsZero())

	// элемент мутировал дальше - отставший ответ игнорируется
	_, _, err = set.Move(1, 10, "12:00")
	require.NoError(t, err)
	assert.False(t, set.AdoptPersisted(1, snap.Seq, stamped))
}

func TestWorkingSet_ReturnsClones(t *testing.T) {
	set := newSet(t, persisted(1, 10, "10:00", 60))

	item, ok := set.Item(1)
	require.True(t, ok)
	item.StartTime = "23:00"
	item.Label = "изменено снаружи"

	fresh, _ := set.Item(1)
	assert.Equal(t, types.TimeString("10:00"), fresh.StartTime)
	assert.Equal(t, "клиент", fresh.Label)
}

func TestWorkingSet_Items_Sorted(t *testing.T) {
	otherDay := day.AddDate(0, 0, 1)
	set := newSet(t,
		persisted(3, 20, "09:00", 30),
		persisted(1, 10, "12:00", 30),
		persisted(2, 10, "09:00", 30),
		&domain.ScheduleItem{ID: 4, ResourceID: 10, Date: otherDay, StartTime: "08:00", DurationMinutes: 30},
	)

	items := set.Items()
	require.Len(t, items, 4)

	ids := []int64{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	assert.Equal(t, []int64{2, 1, 3, 4}, ids)
}

func TestWorkingSet_ItemsOn(t *testing.T) {
	otherDay := day.AddDate(0, 0, 1)
	set := newSet(t,
		persisted(1, 10, "10:00", 30),
		&domain.ScheduleItem{ID: 2, ResourceID: 10, Date: otherDay, StartTime: "10:00", DurationMinutes: 30},
	)

	assert.Len(t, set.ItemsOn(day), 1)
	assert.Len(t, set.ItemsOn(otherDay), 1)
	assert.Empty(t, set.ItemsOn(day.AddDate(0, 0, 7)))
}
