package domain

import "time"

// User is the domain model for stored user records.
type User struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Message   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
