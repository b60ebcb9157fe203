package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ScheduleItem represents a schedulable unit: a booking or a shift
// An item occupies a time range on exactly one resource and one date;
// items never span multiple days
type ScheduleItem struct {
	ID              int64 // positive = assigned by storage, negative = local (pending persistence)
	ResourceID      int64
	Date            time.Time // calendar day, time part is ignored
	StartTime       types.TimeString
	DurationMinutes int

	// Display payload, opaque to the scheduling logic
	Label    string  // e.g. client name
	Subtitle *string // e.g. service name

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPersisted returns true if the item has a storage-assigned ID
func (i *ScheduleItem) IsPersisted() bool {
	return i.ID > 0
}

// StartMinutes returns the start time as minutes since midnight
func (i *ScheduleItem) StartMinutes() int {
	m, _ := i.StartTime.MinutesSinceMidnight()
	return m
}

// EndMinutes returns start plus duration in minutes since midnight
// The value may exceed a full day; the stored duration is never truncated,
// clamping to the visible window is a display concern
func (i *ScheduleItem) EndMinutes() int {
	return i.StartMinutes() + i.DurationMinutes
}

// End returns the wall-clock end time, wrapping past midnight
func (i *ScheduleItem) End() types.TimeString {
	return types.NewTimeStringFromMinutes(i.EndMinutes())
}

// DateKey returns the canonical YYYY-MM-DD key of the item's date
func (i *ScheduleItem) DateKey() string {
	return i.Date.Format(DateFormat)
}

// SameDay returns true if the item sits on the given calendar date
func (i *ScheduleItem) SameDay(date time.Time) bool {
	y1, m1, d1 := i.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps reports whether two items are in conflict: same resource, same
// date, and intersecting [start, start+duration) intervals. Half-open
// semantics: touching endpoints are NOT a conflict. Zero-duration items
// never conflict with anything
func (i *ScheduleItem) Overlaps(other *ScheduleItem) bool {
	if i.ResourceID != other.ResourceID || !i.SameDay(other.Date) {
		return false
	}
	if i.DurationMinutes <= 0 || other.DurationMinutes <= 0 {
		return false
	}
	return i.StartMinutes() < other.EndMinutes() && other.StartMinutes() < i.EndMinutes()
}

// Clone returns a deep copy of the item
func (i *ScheduleItem) Clone() *ScheduleItem {
	clone := *i
	if i.Subtitle != nil {
		s := *i.Subtitle
		clone.Subtitle = &s
	}
	return &clone
}
