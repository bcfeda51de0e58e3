package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCredentials is a user together with its password hash. It never
// leaves the auth handlers.
type UserCredentials struct {
	User
	PasswordHash string `json:"-"`
}
