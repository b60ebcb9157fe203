package duplicate_item

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
	nextID int64
	err    error
	calls  int
}

func (r *fakeItemRepo) Upsert(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	persisted := item.Clone()
	if persisted.ID < 0 {
		persisted.ID = r.nextID
	}
	persisted.CreatedAt = time.Now()
	persisted.UpdatedAt = persisted.CreatedAt
	return persisted, nil
}

func testItem(id, resourceID int64, start string, duration int) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:              id,
		ResourceID:      resourceID,
		Date:            day,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Label:           "клиент",
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

func TestDuplicateItem_Success(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{nextID: 200}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	require.NoError(t, err)

	// копия начинается сразу после исходного и получила id хранилища
	assert.Equal(t, int64(200), resp.Item.ID)
	assert.Equal(t, types.TimeString("11:00"), resp.Item.StartTime)
	assert.Equal(t, "клиент", resp.Item.Label)

	// касание концов - не конфликт
	assert.Empty(t, resp.Conflicts)

	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 2, session.Set().Len())
}

func TestDuplicateItem_ConflictsWithNeighbour(t *testing.T) {
	session := newTestSession(t,
		testItem(1, 10, "10:00", 60),
		testItem(2, 10, "11:30", 60), // пересечётся с копией 11:00-12:00
	)
	uc := NewUseCase(&fakeSessionProvider{session: session}, &fakeItemRepo{nextID: 200}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, resp.Conflicts)
}

func TestDuplicateItem_PersistenceFailureRemovesCopy(t *testing.T) {
	session := newTestSession(t, testItem(1, 10, "10:00", 60))
	repo := &fakeItemRepo{err: errors.New("db down")}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 1})
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	// копия убрана, оригинал на месте
	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 1, session.Set().Len())
	_, ok := session.Set().Item(1)
	assert.True(t, ok)
}

func TestDuplicateItem_NotFound(t *testing.T) {
	session := newTestSession(t)
	repo := &fakeItemRepo{}
	uc := NewUseCase(&fakeSessionProvider{session: session}, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: session.ID, ItemID: 404})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Zero(t, repo.calls)
}

func TestDuplicateItem_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSessionProvider{err: sessions.ErrSessionNotFound}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "gone", ItemID: 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
