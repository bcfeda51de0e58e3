package storage

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrEventFull         = errors.New("event is full")
	ErrNotRegistered     = errors.New("not registered")
	ErrInvalidSchedule   = errors.New("end_time must be after start_time")
)
