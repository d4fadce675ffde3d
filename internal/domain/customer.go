package domain

import "time"

// Customer represents a customer of the events business
type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	MobileNumber string
	Notes        *string
	CreatedAt    time.Time
}

// FullName returns the customer's display name used in SMS templates
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
