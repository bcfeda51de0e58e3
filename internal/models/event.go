package models

import "time"

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Location       *string   `json:"location"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Capacity       int       `json:"capacity"`
	CreatedBy      *string   `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	AvailableSeats int       `json:"available_seats"`
}

type NewEvent struct {
	Title       string
	Description *string
	Location    *string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
	CreatedBy   string
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Capacity    *int
}

func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Location == nil &&
		u.StartTime == nil && u.EndTime == nil && u.Capacity == nil
}

type EventFilter struct {
	Page     int
	PageSize int
	Search   string
	Upcoming bool
}

type EventPage struct {
	Items    []Event `json:"items"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int     `json:"total"`
}
