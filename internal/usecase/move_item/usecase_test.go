package move_item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
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

func (r *fakeItemRepo) Upsert(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	persisted := item.Clone()
	persisted.UpdatedAt = time.Now()
	return persisted, nil
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

	roster := domain.Roster{{ID: 10, Name: "Анна"}, {ID: 20, Name: "Мария"}}
	set := workingset.New(roster, items)

	manager := sessions.NewManager(time.Hour, nopLogger{})
	session, err := manager.Create(domain.DefaultTimeGrid(), set, day, day.AddDate(0, 0, 6))
	require.NoError(t, err)
	return session
}

func TestMoveItem_Success(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        1,
		NewResourceID: 20,
		NewStartTime:  "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), resp.Item.ResourceID)
	assert.Equal(t, types.TimeString("14:30"), resp.Item.StartTime)
	assert.Equal(t, 1, repo.calls)
	assert.Empty(t, resp.Conflicts)
}

func TestMoveItem_NoopSkipsPersistence(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        1,
		NewResourceID: 10,
		NewStartTime:  "10:00",
	})
	require.NoError(t, err)

	// позиция не изменилась - в хранилище не ходили
	assert.Zero(t, repo.calls)
	assert.Equal(t, int64(10), resp.Item.ResourceID)
}

func TestMoveItem_ReportsConflictsAtTarget(t *testing.T) {
	session := newTestSession(t,
		testItem(1, 10, "10:00", 60),
		testItem(2, 20, "14:00", 60),
	)
	uc := NewUseCase(&fakeSessionProvider{session: session}, &fakeItemRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        1,
		NewResourceID: 20,
		NewStartTime:  "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, resp.Conflicts)
}

func TestMoveItem_PersistenceFailureRollsBack(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{err: errors.New("db down")}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        1,
		NewResourceID: 20,
		NewStartTime:  "14:30",
	})
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	// элемент вернулся на прежнее место
	session.Lock()
	defer session.Unlock()
	item, ok := session.Set().Item(1)
	require.True(t, ok)
	assert.Equal(t, int64(10), item.ResourceID)
	assert.Equal(t, types.TimeString("10:00"), item.StartTime)
}

func TestMoveItem_InvalidTargetLeavesItemInPlace(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        1,
		NewResourceID: 99,
		NewStartTime:  "14:30",
	})
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Zero(t, repo.calls)

	session.Lock()
	defer session.Unlock()
	item, _ := session.Set().Item(1)
	assert.Equal(t, int64(10), item.ResourceID)
}

func TestMoveItem_NotFound(t *testing.T) {
	session := newTestSession(t)
	uc := NewUseCase(&fakeSessionProvider{session: session}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     session.ID,
		ItemID:        404,
		NewResourceID: 10,
		NewStartTime:  "10:00",
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMoveItem_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSessionProvider{err: sessions.ErrSessionNotFound}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     "gone",
		ItemID:        1,
		NewResourceID: 10,
		NewStartTime:  "10:00",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
