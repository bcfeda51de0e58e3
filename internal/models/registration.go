package models

import "time"

type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusCancelled  RegistrationStatus = "cancelled"
)

type Registration struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	EventID   string             `json:"event_id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// EventRegistration is a roster row: a registration joined with its user.
type EventRegistration struct {
	ID        string             `json:"id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UserID    string             `json:"user_id"`
	UserName  string             `json:"user_name"`
	UserEmail string             `json:"user_email"`
}

// UserRegistration is a registration joined with its event.
type UserRegistration struct {
	ID        string             `json:"id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	EventID   string             `json:"event_id"`
	Title     string             `json:"title"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Location  *string            `json:"location"`
}
