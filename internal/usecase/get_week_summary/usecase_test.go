package get_week_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler/workingset"
	"github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

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

func testItem(id, resourceID int64, date time.Time, start string, duration int) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:              id,
		ResourceID:      resourceID,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
	}
}

func newTestSession(t *testing.T, items ...*domain.ScheduleItem) *sessions.Session {
	t.Helper()

	roster := domain.Roster{{ID: 10, Name: "Анна"}, {ID: 20, Name: "Мария"}}
	set := workingset.New(roster, items)

	manager := sessions.NewManager(time.Hour, nopLogger{})
	session, err := manager.Create(domain.DefaultTimeGrid(), set, monday, monday.AddDate(0, 0, 6))
	require.NoError(t, err)
	return session
}

func TestGetWeekSummary(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	session := newTestSession(t,
		testItem(1, 10, monday, "09:00", 60),
		testItem(2, 10, monday, "09:30", 60), // конфликтует с 1
		testItem(3, 20, monday, "11:00", 30),
		testItem(4, 10, tuesday, "09:00", 30),
	)
	uc := NewUseCase(&fakeSessionProvider{session: session}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		StartDate: monday,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	mon := resp.Days[0]
	assert.Equal(t, "2026-03-02", mon.Date)
	assert.Equal(t, 3, mon.Total)
	assert.Equal(t, 2, mon.Conflicting)

	// счётчики в порядке ростера
	require.Len(t, mon.PerResource, 2)
	assert.Equal(t, int64(10), mon.PerResource[0].ResourceID)
	assert.Equal(t, 2, mon.PerResource[0].Count)
	assert.Equal(t, int64(20), mon.PerResource[1].ResourceID)
	assert.Equal(t, 1, mon.PerResource[1].Count)

	tue := resp.Days[1]
	assert.Equal(t, 1, tue.Total)
	assert.Equal(t, 0, tue.Conflicting)

	// пустые дни: нулевые счётчики пропускаются
	for i := 2; i < 7; i++ {
		assert.Zero(t, resp.Days[i].Total)
		assert.Empty(t, resp.Days[i].PerResource)
	}
}

func TestGetWeekSummary_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSessionProvider{err: sessions.ErrSessionNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "gone", StartDate: monday})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetWeekSummary_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSessionProvider{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
