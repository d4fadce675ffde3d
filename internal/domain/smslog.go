package domain

import "time"

// SMSLog is an append-only record of a single SMS delivery attempt.
// Exactly one row is written per attempt; rows are never mutated.
type SMSLog struct {
	ID           int64
	PhoneNumber  string
	MessageBody  string
	Success      bool
	ErrorMessage *string
	CreatedAt    time.Time
}
