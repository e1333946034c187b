// Package models contains the client-side data model: users, sessions,
// token pairs and the paginated admin listing.
package models

import "time"

// Role is the access level attached to an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User mirrors the backend's account representation. The authoritative copy
// lives server-side; the client only ever mutates it through explicit
// endpoints and re-reads it afterwards.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login"`
}

// TokenPair is the access/refresh credential pair issued at login.
// Both tokens are opaque to the client.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
