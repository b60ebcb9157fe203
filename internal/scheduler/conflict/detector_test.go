package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var day = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func item(id, resourceID int64, date time.Time, start string, duration int) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:              id,
		ResourceID:      resourceID,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
	}
}

func TestFindConflicts_Overlap(t *testing.T) {
	set := FindConflicts([]*domain.ScheduleItem{
		item(1, 10, day, "10:00", 60),
		item(2, 10, day, "10:30", 60),
		item(3, 10, day, "13:00", 30),
	})

	assert.True(t, set.Has(1))
	assert.True(t, set.Has(2))
	assert.False(t, set.Has(3))
	assert.Equal(t, []int64{2}, set.IDs(1))
	assert.Equal(t, []int64{1}, set.IDs(2))
	assert.Equal(t, 2, set.Count())
}

func TestFindConflicts_TouchingEndpointsAreNotConflicts(t *testing.T) {
	set := FindConflicts([]*domain.ScheduleItem{
		item(1, 10, day, "10:00", 60),
		item(2, 10, day, "11:00", 60),
		item(3, 10, day, "12:00", 60),
	})

	assert.Equal(t, 0, set.Count())
}

func TestFindConflicts_GroupedByResourceAndDate(t *testing.T) {
	otherDay := day.AddDate(0, 0, 1)

	set := FindConflicts([]*domain.ScheduleItem{
		item(1, 10, day, "10:00", 60),
		item(2, 11, day, "10:00", 60),      // другой ресурс
		item(3, 10, otherDay, "10:00", 60), // другая дата
	})

	assert.Equal(t, 0, set.Count())
}

func TestFindConflicts_ZeroDurationNeverConflicts(t *testing.T) {
	set := FindConflicts([]*domain.ScheduleItem{
		item(1, 10, day, "10:00", 0),
		item(2, 10, day, "10:00", 60),
		item(3, 10, day, "10:00", -30),
	})

	assert.Equal(t, 0, set.Count())
}

func TestFindConflicts_ChainOfOverlaps(t *testing.T) {
	// a пересекает b, b пересекает c, но a и c не пересекаются
	set := FindConflicts([]*domain.ScheduleItem{
		item(1, 10, day, "10:00", 45),
		item(2, 10, day, "10:30", 45),
		item(3, 10, day, "11:00", 45),
	})

	assert.Equal(t, []int64{2}, set.IDs(1))
	assert.Equal(t, []int64{1, 3}, set.IDs(2))
	assert.Equal(t, []int64{2}, set.IDs(3))
}

func TestFindConflicts_MatchesNaivePairwise(t *testing.T) {
	items := []*domain.ScheduleItem{
		item(1, 10, day, "08:00", 120),
		item(2, 10, day, "08:30", 30),
		item(3, 10, day, "09:00", 60),
		item(4, 10, day, "10:00", 60),
		item(5, 11, day, "08:15", 90),
		item(6, 11, day, "09:00", 15),
		item(7, 10, day.AddDate(0, 0, 1), "08:00", 480),
	}

	set := FindConflicts(items)

	for _, a := range items {
		for _, b := range items {
			if a.ID == b.ID {
				continue
			}
			expected := a.Overlaps(b)
			_, got := set[a.ID][b.ID]
			require.Equal(t, expected, got, "items %d and %d", a.ID, b.ID)
		}
	}
}
