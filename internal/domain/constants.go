package domain

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxNameLength    = 200
	MaxAttendees     = 1000
	MaxMessageLength = 1600 // Twilio hard limit for a concatenated SMS
	MinCapacity      = 0    // capacity 0 is legal (waitlist-only events)
	MaxCapacity      = 100000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
