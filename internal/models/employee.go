package models

import "time"

// Employee is reference data for the board.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Contact    string `json:"contact"`
	Department string `json:"department"`
}

// User is the authenticated identity held by the session.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is a persisted login.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// User returns the identity the session belongs to.
func (s Session) User() User {
	return User{ID: s.UserID, Name: s.UserName}
}
