package models

import "time"

// ListFilter selects the visible subset of an owner's records. The zero value
// (FilterAll) returns every non-deleted record.
type ListFilter int

const (
	// FilterAll returns all non-deleted records.
	FilterAll ListFilter = iota
	// FilterActive returns non-deleted, active, not-completed records.
	// Time reminders order by trigger_at ascending, location reminders by
	// created_at ascending.
	FilterActive
	// FilterCompleted returns non-deleted completed records.
	FilterCompleted
	// FilterDateRange returns non-deleted records whose trigger_at falls
	// inside [From, To).
	FilterDateRange
	// FilterToday returns records whose trigger_at OR completed_at falls
	// within the local calendar day, incomplete-first, then by the relevant
	// timestamp ascending.
	FilterToday
)

// ListQuery combines a filter with its optional date bounds.
type ListQuery struct {
	Filter ListFilter
	From   time.Time
	To     time.Time
}
