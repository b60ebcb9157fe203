package open_session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var (
	weekStart = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	weekEnd   = weekStart.AddDate(0, 0, 6)
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeResourceRepo struct {
	roster domain.Roster
	err    error

	listByIDsCalls [][]int64
}

func (r *fakeResourceRepo) List(ctx context.Context) (domain.Roster, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.roster, nil
}

func (r *fakeResourceRepo) ListByIDs(ctx context.Context, ids []int64) (domain.Roster, error) {
	r.listByIDsCalls = append(r.listByIDsCalls, ids)
	if r.err != nil {
		return nil, r.err
	}
	filtered := make(domain.Roster, 0, len(ids))
	for _, res := range r.roster {
		for _, id := range ids {
			if res.ID == id {
				filtered = append(filtered, res)
			}
		}
	}
	return filtered, nil
}

type fakeItemRepo struct {
	items []*domain.ScheduleItem
	err   error
}

func (r *fakeItemRepo) ListByResourcesAndRange(ctx context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.ScheduleItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

// inlineTxManager выполняет fn без транзакции, как simpletxmanager
type inlineTxManager struct{}

func (inlineTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func defaultGrid() domain.TimeGrid {
	return domain.NewTimeGrid("08:00", 30, 24)
}

func newUseCaseUnderTest(resourceRepo *fakeResourceRepo, itemRepo *fakeItemRepo, logger Logger) (*UseCase, *sessions.Manager) {
	manager := sessions.NewManager(time.Hour, nopLogger{})
	uc := NewUseCase(resourceRepo, itemRepo, manager, inlineTxManager{}, defaultGrid(), logger)
	return uc, manager
}

func TestOpenSession_Success(t *testing.T) {
	roster := domain.Roster{{ID: 10, Name: "Анна"}, {ID: 20, Name: "Мария"}}
	items := []*domain.ScheduleItem{
		{ID: 1, ResourceID: 10, Date: weekStart, StartTime: "09:00", DurationMinutes: 60},
		{ID: 2, ResourceID: 20, Date: weekStart, StartTime: "10:00", DurationMinutes: 30},
	}
	uc, manager := newUseCaseUnderTest(&fakeResourceRepo{roster: roster}, &fakeItemRepo{items: items}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: weekStart, EndDate: weekEnd})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, roster, resp.Roster)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, defaultGrid(), resp.Grid)

	// сессия зарегистрирована и содержит рабочий набор
	session, err := manager.Get(resp.SessionID)
	require.NoError(t, err)
	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 2, session.Set().Len())
}

func TestOpenSession_FiltersRosterByIDs(t *testing.T) {
	roster := domain.Roster{{ID: 10, Name: "Анна"}, {ID: 20, Name: "Мария"}}
	resourceRepo := &fakeResourceRepo{roster: roster}
	uc, _ := newUseCaseUnderTest(resourceRepo, &fakeItemRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceIDs: []int64{20},
		StartDate:   weekStart,
		EndDate:     weekEnd,
	})
	require.NoError(t, err)

	require.Len(t, resourceRepo.listByIDsCalls, 1)
	assert.Equal(t, []int64{20}, resourceRepo.listByIDsCalls[0])
	require.Len(t, resp.Roster, 1)
	assert.Equal(t, int64(20), resp.Roster[0].ID)
}

func TestOpenSession_GridOverrides(t *testing.T) {
	roster := domain.Roster{{ID: 10, Name: "Анна"}}
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{roster: roster}, &fakeItemRepo{}, nopLogger{})

	// заданные поля перекрывают дефолты, нулевые берутся из конфигурации
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: weekStart,
		EndDate:   weekEnd,
		Grid:      &GridParams{SlotMinutes: 15},
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("08:00"), resp.Grid.StartOfDay)
	assert.Equal(t, 15, resp.Grid.SlotMinutes)
	assert.Equal(t, 24, resp.Grid.SlotCount)
}

func TestOpenSession_NoResources(t *testing.T) {
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: weekStart, EndDate: weekEnd})
	assert.ErrorIs(t, err, ErrNoResources)
}

func TestOpenSession_DateRangeTooLong(t *testing.T) {
	roster := domain.Roster{{ID: 10, Name: "Анна"}}
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{roster: roster}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: weekStart,
		EndDate:   weekStart.AddDate(0, 0, domain.MaxSessionDays),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestOpenSession_EndBeforeStart(t *testing.T) {
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: weekStart,
		EndDate:   weekStart.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestOpenSession_InvalidGridParams(t *testing.T) {
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: weekStart,
		EndDate:   weekEnd,
		Grid:      &GridParams{DayStart: "25:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StartDate: weekStart,
		EndDate:   weekEnd,
		Grid:      &GridParams{SlotMinutes: 3},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpenSession_RepoFailure(t *testing.T) {
	uc, _ := newUseCaseUnderTest(&fakeResourceRepo{err: errors.New("db down")}, &fakeItemRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: weekStart, EndDate: weekEnd})
	assert.ErrorIs(t, err, ErrInternal)
}
