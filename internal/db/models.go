package db

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Destination struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Destination string    `json:"destination"`
	Country     string    `json:"country"`
	Notes       string    `json:"notes"`
	Priority    Priority  `json:"priority"`
	Visited     bool      `json:"visited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
