package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// TimeGrid divides a day's operating window into discrete slots of fixed
// granularity and provides slot-index <-> wall-clock conversions. The same
// grid is used for day, week and month views so row math never
// special-cases the view type. Derived state, never persisted
type TimeGrid struct {
	StartOfDay  types.TimeString
	SlotMinutes int
	SlotCount   int
}

// NewTimeGrid builds a grid, substituting defaults for non-positive
// parameters. There are no error conditions: UI drag gestures routinely
// produce transient out-of-bounds inputs, so everything clamps
func NewTimeGrid(startOfDay types.TimeString, slotMinutes, slotCount int) TimeGrid {
	if startOfDay.Validate() != nil {
		startOfDay = DefaultDayStart
	}
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	return TimeGrid{
		StartOfDay:  startOfDay,
		SlotMinutes: slotMinutes,
		SlotCount:   slotCount,
	}
}

// DefaultTimeGrid returns the grid with all default parameters
func DefaultTimeGrid() TimeGrid {
	return NewTimeGrid(DefaultDayStart, DefaultSlotMinutes, DefaultSlotCount)
}

// startMinutes returns the grid origin in minutes since midnight
func (g TimeGrid) startMinutes() int {
	m, _ := g.StartOfDay.MinutesSinceMidnight()
	return m
}

// MinutesFromStart returns the signed offset of t from the grid origin
func (g TimeGrid) MinutesFromStart(t types.TimeString) int {
	m, _ := t.MinutesSinceMidnight()
	return m - g.startMinutes()
}

// SlotIndexForTime maps a wall-clock time to a slot index, clamped to
// [0, SlotCount-1]
func (g TimeGrid) SlotIndexForTime(t types.TimeString) int {
	offset := g.MinutesFromStart(t)
	if offset < 0 {
		return 0
	}
	idx := offset / g.SlotMinutes
	if idx > g.SlotCount-1 {
		return g.SlotCount - 1
	}
	return idx
}

// TimeForSlotIndex is the inverse mapping; out-of-range indexes clamp
func (g TimeGrid) TimeForSlotIndex(i int) types.TimeString {
	if i < 0 {
		i = 0
	}
	if i > g.SlotCount-1 {
		i = g.SlotCount - 1
	}
	return types.NewTimeStringFromMinutes(g.startMinutes() + i*g.SlotMinutes)
}

// VisibleRange returns the start and end of the day's visible window
func (g TimeGrid) VisibleRange() (types.TimeString, types.TimeString) {
	return g.StartOfDay, types.NewTimeStringFromMinutes(g.startMinutes() + g.SlotCount*g.SlotMinutes)
}

// TotalMinutes returns the length of the visible window in minutes
func (g TimeGrid) TotalMinutes() int {
	return g.SlotCount * g.SlotMinutes
}
