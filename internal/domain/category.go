package domain

import "time"

// EventCategory is a template for creating events.
// It pre-fills capacity and start time on new event forms; existing
// events keep their own values and are never re-derived from the category.
type EventCategory struct {
	ID               int64
	Name             string
	DefaultCapacity  int
	DefaultStartTime string // HH:MM
	Notes            *string
	CreatedAt        time.Time
}
