package domain

import "time"

// Resource represents a bookable staff member (stylist)
// The roster is loaded from storage once per scheduling session and
// treated as read-only input by the scheduling core
type Resource struct {
	ID    int64
	Name  string
	Color string // display color, hex string like "#7C4DFF"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roster an ordered list of resources for a scheduling session
// Order defines the column order in day-view layouts
type Roster []Resource

// Contains returns true if the roster holds a resource with the given ID
func (r Roster) Contains(id int64) bool {
	for _, res := range r {
		if res.ID == id {
			return true
		}
	}
	return false
}

// IndexOf returns the column index of the resource, or -1 if absent
func (r Roster) IndexOf(id int64) int {
	for i, res := range r {
		if res.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the resource IDs in roster order
func (r Roster) IDs() []int64 {
	ids := make([]int64, len(r))
	for i, res := range r {
		ids[i] = res.ID
	}
	return ids
}
