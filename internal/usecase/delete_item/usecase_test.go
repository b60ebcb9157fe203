package delete_item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	itemstorage "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/item"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var day = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSessionProvider struct {
	session *sessions.Session
	err     error
}

func (p *fakeSessionProvider) Get(id string) (*sessions.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

type fakeItemRepo struct {
	err   error
	calls int
}

func (r *fakeItemRepo) Delete(ctx context.Context, id int64) error {
	r.calls++
	return r.err
}

func testItem(id, resourceID int64, start string, duration int) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:              id,
		ResourceID:      resourceID,
		Date:            day,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
	}
}

func newTestSession(t *testing.T, items ...*domain.ScheduleItem) *sessions.Session {
	t.Helper()

	roster := domain.Roster{{ID: 10, Name: "Анна"}}
	set := workingset.New(roster, items)

	manager := sessions.NewManager(time.Hour, nopLogger{})
	session, err := manager.Create(domain.DefaultTimeGrid(), set, day, day.AddDate(0, 0, 6))
	require.NoError(t, err)
	return session
}

func TestDeleteItem_Success(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 0, session.Set().Len())
}

func TestDeleteItem_LocalOnlyItemSkipsStore(t *testing.T) {
	session := newTestSession(t, testItem(-5, 10, "10:00", 60))
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: -5})
	require.NoError(t, err)

	// хранилище элемент не видело - удалять там нечего
	assert.Zero(t, repo.calls)

	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 0, session.Set().Len())
}

func TestDeleteItem_AbsentInWorkingSet(t *testing.T) {
	session := newTestSession(t)
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 404})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Zero(t, repo.calls)
}

func TestDeleteItem_AbsentInStoreIsSuccess(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{err: itemstorage.ErrItemNotFound}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	// хранилище уже не знает элемент - удаление идемпотентно
	err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	require.NoError(t, err)

	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 0, session.Set().Len())
}

func TestDeleteItem_PersistenceFailureRestoresItem(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{err: errors.New("db down")}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	// элемент восстановлен в прежнем виде
	session.Lock()
	defer session.Unlock()
	item, ok := session.Set().Item(1)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), item.StartTime)
}

func TestDeleteItem_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSessionProvider{err: sessions.ErrSessionNotFound}, &fakeItemRepo{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{SessionID: "gone", ItemID: 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
