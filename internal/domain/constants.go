package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Default grid values
const (
	DefaultDayStart    types.TimeString = "08:00"
	DefaultSlotMinutes                  = 30
	DefaultSlotCount                    = 24 // 08:00 - 20:00
	DefaultRowHeight                    = 40.0
)

// MinVisibleSlots display-only floor for block height: very short items
// still render at least half a slot tall. Never mutates the stored duration
const MinVisibleSlots = 0.5

// Business validation constants
const (
	MinSlotMinutes     = 5
	MaxSlotMinutes     = 240 // 4 hours
	MaxSlotCount       = 288 // 5-minute slots over a full day
	MaxDurationMinutes = 1440
	MaxLabelLength     = 200
	MaxSessionDays     = 62 // at most two month pages per session
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
