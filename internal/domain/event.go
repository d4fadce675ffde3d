package domain

import "time"

// Event represents a bookable event
type Event struct {
	ID         int64
	Name       string
	CategoryID int64
	Capacity   int
	StartTime  time.Time
	Notes      *string
	CreatedAt  time.Time

	// Category is populated only when the caller asked for the relation.
	// A nil value means "not resolved", not "no category".
	Category *EventCategory
}

// IsUpcoming returns true if the event starts after the given moment
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartTime.After(now)
}
