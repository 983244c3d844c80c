package domain

import "time"

// Project statuses. Free-form in the original data model; constrained here.
const (
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
)

// Project belongs to an owner and references one of the owner's clients.
type Project struct {
	ID          string
	UserID      string
	ClientID    string
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
