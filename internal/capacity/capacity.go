// Package capacity implements the capacity ledger: pure, deterministic
// decisions over an event's capacity and its current bookings.
package capacity

import "github.com/m04kA/SMC-EventsService/internal/domain"

// Decision is the result of a capacity check
type Decision struct {
	Accepted  bool
	Requested int
	Available int // remaining capacity the request was checked against
	Shortfall int // how many seats were missing; 0 when accepted
}

// committed sums attendees across bookings, excluding the booking with
// excludeID when it is set (so an edited booking does not count against
// itself)
func committed(bookings []*domain.Booking, excludeID *int64) int {
	total := 0
	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		total += b.Attendees
	}
	return total
}

// Remaining returns the true remaining capacity: capacity minus the sum
// of attendees across all bookings. May be negative when an event is
// over-committed; callers that show the value use DisplayRemaining.
func Remaining(capacity int, bookings []*domain.Booking) int {
	return capacity - committed(bookings, nil)
}

// DisplayRemaining returns the remaining capacity clamped at zero
func DisplayRemaining(capacity int, bookings []*domain.Booking) int {
	remaining := Remaining(capacity, bookings)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanAccept decides whether a booking for requested attendees fits into
// the event's capacity given the existing bookings. excludeBookingID,
// when set, removes that booking's own contribution from the check
// (used on edit).
//
// requested == 0 is always accepted: reminder-only bookings never
// consume capacity.
func CanAccept(capacity int, bookings []*domain.Booking, requested int, excludeBookingID *int64) Decision {
	available := capacity - committed(bookings, excludeBookingID)

	if requested == 0 {
		return Decision{Accepted: true, Requested: 0, Available: available}
	}

	if requested <= available {
		return Decision{Accepted: true, Requested: requested, Available: available}
	}

	return Decision{
		Accepted:  false,
		Requested: requested,
		Available: available,
		Shortfall: requested - available,
	}
}
